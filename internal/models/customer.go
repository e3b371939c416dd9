package models

// Customer represents a clinic customer, including the clinical intake
// fields captured during the first visit.
type Customer struct {
	UserID          uint   `json:"user_id" gorm:"column:user_id;primaryKey"`
	Fname           string `json:"fname" validate:"required,max=100"`
	Lname           string `json:"lname" validate:"max=100"`
	DateOfBirth     string `json:"date_of_birth"`
	PhoneNo         string `json:"phone_no" gorm:"uniqueIndex;type:varchar(32)" validate:"required"`
	Email           string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Postcode        string `json:"postcode"`
	Country         string `json:"country"`
	Sickness        string `json:"sickness"`
	Sex             string `json:"sex"`
	Pregnant        bool   `json:"pregnant"`
	Remark          string `json:"remark"`
	StratumCorneum  string `json:"stratum_corneum"`
	SkinType        string `json:"skin_type"`
	SkincareProgram string `json:"skincare_program"`
	MicroSurgery    string `json:"micro_surgery"`
}

// TableName keeps the original table name.
func (Customer) TableName() string {
	return "customers"
}
