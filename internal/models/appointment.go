package models

// Appointment is a scheduled visit. UserID is resolved from the customer's
// phone number at creation time, never supplied directly by the client.
type Appointment struct {
	AppID     uint   `json:"app_id" gorm:"column:app_id;primaryKey"`
	UserID    uint   `json:"user_id" gorm:"column:user_id;index"`
	Fname     string `json:"fname" validate:"required"`
	Lname     string `json:"lname"`
	PhoneNo   string `json:"phone_no" validate:"required"`
	AppDate   string `json:"app_date" gorm:"type:varchar(10)" validate:"required"`
	AppTime   string `json:"app_time" gorm:"type:varchar(8)" validate:"required"`
	Remark    string `json:"remark"`
	AppStatus string `json:"app_status"`
}

func (Appointment) TableName() string {
	return "appointments"
}
