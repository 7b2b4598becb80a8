package models

// Appointment carries denormalized patient display fields (name, sex, age);
// no referential invariant is enforced against Patient.
type Appointment struct {
	ID        string `bson:"_id,omitempty" json:"_id,omitempty"`
	PatientID string `bson:"patient_id" json:"patient_id"`
	DoctorID  string `bson:"doctor_id" json:"doctor_id"`
	Date      string `bson:"date" json:"date"`
	Name      string `bson:"name" json:"name"`
	Sex       string `bson:"sex" json:"sex"`
	Age       string `bson:"age" json:"age"`
}
