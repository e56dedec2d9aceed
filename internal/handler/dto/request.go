package dto

// Calendar dates travel as "2006-01-02" strings; handlers parse and
// validate them before touching a registry.

type CreateBankRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

type OpenAccountRequest struct {
	Holder string `json:"holder" binding:"required"`
}

type MoneyRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type PaymentRequest struct {
	IBAN   string `json:"iban" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
}

type CreateHotelRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	NIF         string `json:"nif" binding:"required"`
	IBAN        string `json:"iban" binding:"required"`
	PriceSingle int64  `json:"price_single" binding:"required,gt=0"`
	PriceDouble int64  `json:"price_double" binding:"required,gt=0"`
}

type AddRoomRequest struct {
	Number string `json:"number" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=SINGLE DOUBLE"`
}

type BookRoomRequest struct {
	Type      string `json:"type" binding:"required,oneof=SINGLE DOUBLE"`
	Arrival   string `json:"arrival" binding:"required"`
	Departure string `json:"departure" binding:"required"`
	BuyerNIF  string `json:"buyer_nif" binding:"required"`
}

type CreateRentACarRequest struct {
	Name string `json:"name" binding:"required"`
	NIF  string `json:"nif" binding:"required"`
	IBAN string `json:"iban" binding:"required"`
}

type AddVehicleRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=CAR MOTORCYCLE"`
	Plate       string `json:"plate" binding:"required"`
	PricePerDay int64  `json:"price_per_day" binding:"required,gt=0"`
}

type RentVehicleRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=CAR MOTORCYCLE"`
	License   string `json:"license" binding:"required"`
	BuyerNIF  string `json:"buyer_nif" binding:"required"`
	BuyerIBAN string `json:"buyer_iban" binding:"required"`
	Begin     string `json:"begin" binding:"required"`
	End       string `json:"end" binding:"required"`
}

type CreateProviderRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	NIF  string `json:"nif" binding:"required"`
	IBAN string `json:"iban" binding:"required"`
}

type NewActivityRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	MinAge   int    `json:"min_age" binding:"min=0"`
	MaxAge   int    `json:"max_age" binding:"required"`
}

type NewOfferRequest struct {
	Begin  string `json:"begin" binding:"required"`
	End    string `json:"end" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type ReserveActivityRequest struct {
	Age      int    `json:"age" binding:"required,gt=0"`
	Begin    string `json:"begin" binding:"required"`
	End      string `json:"end" binding:"required"`
	BuyerNIF string `json:"buyer_nif" binding:"required"`
}

type RegisterTaxPayerRequest struct {
	Kind string `json:"kind" binding:"required,oneof=BUYER SELLER"`
	NIF  string `json:"nif" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type NewItemTypeRequest struct {
	Name string `json:"name" binding:"required"`
	Rate int    `json:"rate" binding:"min=0,max=100"`
}

type SubmitInvoiceRequest struct {
	SellerNIF string `json:"seller_nif" binding:"required"`
	BuyerNIF  string `json:"buyer_nif" binding:"required"`
	ItemType  string `json:"item_type" binding:"required"`
	Value     int64  `json:"value" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required"`
}

type PlanTripRequest struct {
	Begin     string `json:"begin" binding:"required"`
	End       string `json:"end" binding:"required"`
	Age       int    `json:"age" binding:"required,gt=0"`
	BuyerNIF  string `json:"buyer_nif" binding:"required"`
	BuyerIBAN string `json:"buyer_iban" binding:"required"`
	WithCar   bool   `json:"with_car"`
	License   string `json:"license"`
}
