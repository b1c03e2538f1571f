package models

// AppointmentRecord is one confirmed booking submission.
type AppointmentRecord struct {
	DoctorID     int    `json:"doctorId"`
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail"`
	PatientPhone string `json:"patientPhone"`
	Date         string `json:"appointmentDate"`
	Time         string `json:"appointmentTime"`
	VisitType    string `json:"appointmentType"`
	Notes        string `json:"notes"`
}
