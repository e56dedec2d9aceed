package dto

import (
	"time"

	"github.com/afonsob/travelbooker/internal/activity"
	"github.com/afonsob/travelbooker/internal/bank"
	"github.com/afonsob/travelbooker/internal/car"
	"github.com/afonsob/travelbooker/internal/hotel"
	"github.com/afonsob/travelbooker/internal/tax"
	"github.com/afonsob/travelbooker/internal/trip"
)

const dateLayout = "2006-01-02"

type ReferenceResponse struct {
	Reference string `json:"reference"`
}

type CancellationResponse struct {
	CancellationToken string `json:"cancellation_token"`
}

type CodeResponse struct {
	Code string `json:"code"`
}

type AccountResponse struct {
	IBAN    string `json:"iban"`
	Holder  string `json:"holder"`
	Balance int64  `json:"balance"`
}

type OperationResponse struct {
	Reference         string `json:"reference"`
	CancellationToken string `json:"cancellation_token,omitempty"`
	State             string `json:"state"`
	Type              string `json:"type"`
	IBAN              string `json:"iban"`
	Amount            int64  `json:"amount"`
	Time              string `json:"time"`
}

type BookingResponse struct {
	Reference         string `json:"reference"`
	CancellationToken string `json:"cancellation_token,omitempty"`
	State             string `json:"state"`
	Hotel             string `json:"hotel"`
	RoomNumber        string `json:"room_number"`
	RoomType          string `json:"room_type"`
	Arrival           string `json:"arrival"`
	Departure         string `json:"departure"`
	BuyerNIF          string `json:"buyer_nif"`
	Amount            int64  `json:"amount"`
}

type RentingResponse struct {
	Reference         string `json:"reference"`
	CancellationToken string `json:"cancellation_token,omitempty"`
	State             string `json:"state"`
	Company           string `json:"company"`
	Plate             string `json:"plate"`
	Kind              string `json:"kind"`
	License           string `json:"license"`
	Begin             string `json:"begin"`
	End               string `json:"end"`
	BuyerNIF          string `json:"buyer_nif"`
	Amount            int64  `json:"amount"`
}

type ReservationResponse struct {
	Reference         string `json:"reference"`
	CancellationToken string `json:"cancellation_token,omitempty"`
	State             string `json:"state"`
	Provider          string `json:"provider"`
	Activity          string `json:"activity"`
	Begin             string `json:"begin"`
	End               string `json:"end"`
	BuyerNIF          string `json:"buyer_nif"`
	Amount            int64  `json:"amount"`
}

type InvoiceResponse struct {
	Reference         string `json:"reference"`
	CancellationToken string `json:"cancellation_token,omitempty"`
	State             string `json:"state"`
	SellerNIF         string `json:"seller_nif"`
	BuyerNIF          string `json:"buyer_nif"`
	ItemType          string `json:"item_type"`
	Value             int64  `json:"value"`
	IVA               int64  `json:"iva"`
	Date              string `json:"date"`
}

type TripResponse struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	ActivityReference string `json:"activity_reference,omitempty"`
	BookingReference  string `json:"booking_reference,omitempty"`
	RentingReference  string `json:"renting_reference,omitempty"`
	PaymentReference  string `json:"payment_reference,omitempty"`
	InvoiceReference  string `json:"invoice_reference,omitempty"`
	Amount            int64  `json:"amount"`
	FailedStep        string `json:"failed_step,omitempty"`
	CreatedAt         string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToAccountResponse(a bank.AccountData) AccountResponse {
	return AccountResponse{
		IBAN:    a.IBAN,
		Holder:  a.Holder,
		Balance: a.Balance,
	}
}

func ToOperationResponse(op bank.OperationData) OperationResponse {
	return OperationResponse{
		Reference:         op.Reference,
		CancellationToken: op.CancellationToken,
		State:             string(op.State),
		Type:              string(op.Type),
		IBAN:              op.IBAN,
		Amount:            op.Amount,
		Time:              op.Time.Format(time.RFC3339),
	}
}

func ToBookingResponse(b hotel.BookingData) BookingResponse {
	return BookingResponse{
		Reference:         b.Reference,
		CancellationToken: b.CancellationToken,
		State:             string(b.State),
		Hotel:             b.HotelName,
		RoomNumber:        b.RoomNumber,
		RoomType:          string(b.RoomType),
		Arrival:           b.Arrival.Format(dateLayout),
		Departure:         b.Departure.Format(dateLayout),
		BuyerNIF:          b.BuyerNIF,
		Amount:            b.Amount,
	}
}

func ToRentingResponse(r car.RentingData) RentingResponse {
	return RentingResponse{
		Reference:         r.Reference,
		CancellationToken: r.CancellationToken,
		State:             string(r.State),
		Company:           r.CompanyCode,
		Plate:             r.Plate,
		Kind:              string(r.Kind),
		License:           r.License,
		Begin:             r.Begin.Format(dateLayout),
		End:               r.End.Format(dateLayout),
		BuyerNIF:          r.BuyerNIF,
		Amount:            r.Amount,
	}
}

func ToReservationResponse(r activity.ReservationData) ReservationResponse {
	return ReservationResponse{
		Reference:         r.Reference,
		CancellationToken: r.CancellationToken,
		State:             string(r.State),
		Provider:          r.ProviderCode,
		Activity:          r.ActivityName,
		Begin:             r.Begin.Format(dateLayout),
		End:               r.End.Format(dateLayout),
		BuyerNIF:          r.BuyerNIF,
		Amount:            r.Amount,
	}
}

func ToInvoiceResponse(inv tax.InvoiceData) InvoiceResponse {
	return InvoiceResponse{
		Reference:         inv.Reference,
		CancellationToken: inv.CancellationToken,
		State:             string(inv.State),
		SellerNIF:         inv.SellerNIF,
		BuyerNIF:          inv.BuyerNIF,
		ItemType:          inv.ItemType,
		Value:             inv.Value,
		IVA:               inv.IVA,
		Date:              inv.Date.Format(dateLayout),
	}
}

func ToTripResponse(t *trip.Trip) TripResponse {
	return TripResponse{
		ID:                t.ID,
		Status:            string(t.Status),
		ActivityReference: t.ActivityReference,
		BookingReference:  t.BookingReference,
		RentingReference:  t.RentingReference,
		PaymentReference:  t.PaymentReference,
		InvoiceReference:  t.InvoiceReference,
		Amount:            t.Amount,
		FailedStep:        t.FailedStep,
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
	}
}
