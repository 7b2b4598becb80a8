package routers

import (
	"medrecord-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes(
	router chi.Router,
	patientController *controllers.PatientController,
	reportController *controllers.ReportController,
	appointmentController *controllers.AppointmentController,
) {
	router.Post("/save_patient", patientController.SavePatient)
	router.Get("/get_patient_details/{patient_id}", patientController.GetPatientDetails)

	router.Post("/save_detailed_report", reportController.SaveDetailedReport)
	router.Get("/get_detailed_report/{patient_id}", reportController.GetDetailedReport)
	router.Get("/get_reports/{patient_id}", reportController.GetReports)

	router.Post("/save_appointment", appointmentController.SaveAppointment)
	router.Get("/get_appointment/{appointment_id}", appointmentController.GetAppointmentDetails)
	router.Get("/get_n_appointments/{doctor_id}", appointmentController.GetAppointments)
}
