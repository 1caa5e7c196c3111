package mailer

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Тексты писем повторяют шаблоны продукта; плейсхолдеры заполняются
// данными встречи и услуги.

func confirmationBody(appt *domain.Appointment, svc *domain.Service) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", appt.CustomerName)
	fmt.Fprintf(&b, "Thank you for booking %q.\n\n", svc.Name)
	fmt.Fprintf(&b, "Date: %s\n", appt.Date.Format(domain.DateFormat))
	fmt.Fprintf(&b, "Time: %s (%s)\n", appt.StartTime, appt.Timezone)
	fmt.Fprintf(&b, "Duration: %d minutes\n\n", appt.DurationMinutes)
	b.WriteString("Your appointment is pending confirmation. You will receive another email once it has been reviewed.\n")
	return b.String()
}

func adminNotificationBody(appt *domain.Appointment, svc *domain.Service) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new appointment has been booked for %q.\n\n", svc.Name)
	fmt.Fprintf(&b, "Customer: %s <%s>\n", appt.CustomerName, appt.CustomerEmail)
	if appt.CustomerPhone != nil && *appt.CustomerPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", *appt.CustomerPhone)
	}
	fmt.Fprintf(&b, "Date: %s\n", appt.Date.Format(domain.DateFormat))
	fmt.Fprintf(&b, "Time: %s (%s)\n", appt.StartTime, appt.Timezone)
	if appt.CustomerMessage != nil && *appt.CustomerMessage != "" {
		fmt.Fprintf(&b, "\nMessage:\n%s\n", *appt.CustomerMessage)
	}
	b.WriteString("\nPlease review and approve or decline the appointment.\n")
	return b.String()
}

func approvalBody(appt *domain.Appointment, svc *domain.Service) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", appt.CustomerName)
	fmt.Fprintf(&b, "Your appointment for %q has been confirmed.\n\n", svc.Name)
	fmt.Fprintf(&b, "Date: %s\n", appt.Date.Format(domain.DateFormat))
	fmt.Fprintf(&b, "Time: %s (%s)\n", appt.StartTime, appt.Timezone)
	if appt.MeetingLink != nil && *appt.MeetingLink != "" {
		fmt.Fprintf(&b, "\nJoin the meeting: %s\n", *appt.MeetingLink)
	}
	b.WriteString("\nWe look forward to seeing you.\n")
	return b.String()
}

func declineBody(appt *domain.Appointment, svc *domain.Service) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", appt.CustomerName)
	fmt.Fprintf(&b, "Unfortunately your appointment for %q on %s at %s could not be confirmed.\n\n",
		svc.Name, appt.Date.Format(domain.DateFormat), appt.StartTime)
	b.WriteString("Please pick another time slot and book again.\n")
	return b.String()
}
