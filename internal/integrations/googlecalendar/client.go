package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Смещения известных зон в минутах относительно UTC. Дублируют таблицу
// конвертера: события календаря строятся в абсолютном времени, поэтому
// клиенту нужно собственное отображение зона -> time.Location.
var zoneOffsets = map[string]int{
	"UTC": 0,
	"EST": -300,
	"PST": -480,
	"IST": 330,
}

// GoogleClient клиент Google Calendar API. Создает события с Google Meet
// конференцией через OAuth2 refresh token.
type GoogleClient struct {
	calendarID string
	timeout    time.Duration
	svc        *calendar.Service
	log        Logger
}

// NewGoogleClient создает клиент Google Calendar.
// Токен обновляется автоматически через oauth2.TokenSource.
func NewGoogleClient(ctx context.Context, calendarID, clientID, clientSecret, refreshToken string, timeout time.Duration, log Logger) (*GoogleClient, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarEventsScope},
	}

	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("googlecalendar: NewGoogleClient - create service: %w", err)
	}

	return &GoogleClient{
		calendarID: calendarID,
		timeout:    timeout,
		svc:        svc,
		log:        log,
	}, nil
}

// CreateEvent создает событие календаря с конференцией Google Meet
func (c *GoogleClient) CreateEvent(ctx context.Context, appt *domain.Appointment, svc *domain.Service) (*CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start, end, err := eventTimes(appt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEvent - resolve times: %v", ErrCreateEvent, err)
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("%s - %s", svc.Name, appt.CustomerName),
		Description: eventDescription(appt),
		Start:       &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
		Attendees: []*calendar.EventAttendee{
			{Email: appt.CustomerEmail, DisplayName: appt.CustomerName},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: fmt.Sprintf("appt-%d-%d", appt.ID, start.Unix()),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEvent - insert event: %v", ErrCreateEvent, err)
	}

	result := &CalendarEvent{
		EventID:     created.Id,
		MeetingLink: created.HangoutLink,
	}
	if result.MeetingLink == "" && created.ConferenceData != nil {
		for _, ep := range created.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				result.MeetingLink = ep.Uri
				break
			}
		}
	}

	c.log.Info("googlecalendar: event %s created for appointment %d", result.EventID, appt.ID)

	return result, nil
}

// DeleteEvent удаляет событие календаря
func (c *GoogleClient) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.svc.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: DeleteEvent - delete %s: %v", ErrDeleteEvent, eventID, err)
	}

	c.log.Info("googlecalendar: event %s deleted", eventID)

	return nil
}

// eventTimes собирает абсолютные моменты начала и конца встречи
// из даты, времени и зоны записи
func eventTimes(appt *domain.Appointment) (time.Time, time.Time, error) {
	offset, ok := zoneOffsets[appt.Timezone]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown timezone %q", appt.Timezone)
	}

	minutes, err := appt.StartTime.Minutes()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	loc := time.FixedZone(appt.Timezone, offset*60)
	start := time.Date(appt.Date.Year(), appt.Date.Month(), appt.Date.Day(), 0, 0, 0, 0, loc).
		Add(time.Duration(minutes) * time.Minute)
	end := start.Add(time.Duration(appt.DurationMinutes) * time.Minute)

	return start, end, nil
}

func eventDescription(appt *domain.Appointment) string {
	desc := fmt.Sprintf("Customer: %s\nEmail: %s", appt.CustomerName, appt.CustomerEmail)
	if appt.CustomerPhone != nil && *appt.CustomerPhone != "" {
		desc += fmt.Sprintf("\nPhone: %s", *appt.CustomerPhone)
	}
	if appt.CustomerMessage != nil && *appt.CustomerMessage != "" {
		desc += fmt.Sprintf("\n\n%s", *appt.CustomerMessage)
	}
	return desc
}
