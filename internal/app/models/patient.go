package models

type Patient struct {
	ID          string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string `bson:"name" json:"name"`
	DateOfBirth string `bson:"date_of_birth" json:"date_of_birth"`
	Gender      string `bson:"gender" json:"gender"`
	BloodGroup  string `bson:"blood_group" json:"blood_group"`
	ContactInfo string `bson:"contact_info" json:"contact_info"`
}
