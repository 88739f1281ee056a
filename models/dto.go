package models

type VendorInfo struct {
	Name       string `json:"name"`
	PhoneLocal string `json:"phone_local"`
	PhoneIntl  string `json:"phone_intl"`
	Email      string `json:"email"`
}

// CartView is a consistent snapshot of one session's cart.
type CartView struct {
	Lines      []CartLine `json:"lines"`
	TotalCount int        `json:"total_count"`
	TotalValue float64    `json:"total_value"`
}

type CheckoutData struct {
	Summary  string     `json:"summary"`
	ChatLink string     `json:"chat_link"`
	MailLink string     `json:"mail_link"`
	Cart     CartView   `json:"cart"`
	Vendor   VendorInfo `json:"vendor"`
}

type EnquiryRequest struct {
	ReplyTo string `json:"reply_to" form:"reply_to"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}

type PaginationLinks struct {
	Self string `json:"self"`
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

type HATEOASResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    interface{}     `json:"data"`
	Meta    MetaData        `json:"meta"`
	Links   PaginationLinks `json:"links"`
}
