package storage

type Workshop struct {
	ID            int    `json:"workshop_id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
}

type Operator struct {
	ID         int    `json:"operator_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	WorkshopID *int   `json:"workshop_id"`
}

type Firm struct {
	ID            int     `json:"firm_id"`
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	IsActive      bool    `json:"is_active"`
}

type Model struct {
	ID       int     `json:"model_id"`
	FirmID   int     `json:"firm_id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Note     *string `json:"note"`
	IsActive bool    `json:"is_active"`
}
