// Package calendar talks to the Google Calendar v3 API for two purposes:
// listing the busy events of a listing's calendar and recording confirmed
// bookings back as all-day events.
package calendar

import (
	"context"
	"fmt"
	"time"

	"batoo/internal/availability"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	// How far ahead busy events are fetched, matching the booking form's
	// visible horizon.
	horizonDays = 60
	maxEvents   = 50
)

type Client struct {
	svc               *gcal.Service
	defaultCalendarID string
}

func New(ctx context.Context, apiKey, defaultCalendarID string) (*Client, error) {
	svc, err := gcal.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("init calendar service: %w", err)
	}
	return &Client{svc: svc, defaultCalendarID: defaultCalendarID}, nil
}

// ListBusyEvents fetches upcoming events (single instances, ascending by
// start) and normalizes them for the availability engine. An empty
// calendarID falls back to the configured default.
func (c *Client) ListBusyEvents(ctx context.Context, calendarID string) ([]availability.BusyEvent, error) {
	if calendarID == "" {
		calendarID = c.defaultCalendarID
	}

	now := time.Now()
	res, err := c.svc.Events.List(calendarID).
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, horizonDays).Format(time.RFC3339)).
		ShowDeleted(false).
		SingleEvents(true).
		MaxResults(maxEvents).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list events for %q: %w", calendarID, err)
	}

	events := make([]availability.BusyEvent, 0, len(res.Items))
	for _, item := range res.Items {
		if item.Start == nil || item.End == nil {
			continue
		}
		events = append(events, availability.BusyEvent{
			ID:      item.Id,
			Summary: item.Summary,
			Start:   toEventTime(item.Start),
			End:     toEventTime(item.End),
		})
	}
	return events, nil
}

// toEventTime keeps the provider's two bound shapes apart: all-day events
// carry a bare date, timed events an RFC3339 timestamp.
func toEventTime(edt *gcal.EventDateTime) availability.EventTime {
	if edt.Date != "" {
		return availability.EventTime{Date: edt.Date}
	}
	if ts, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
		return availability.EventTime{DateTime: ts}
	}
	return availability.EventTime{}
}

// CreateBookingEvent records a booking as an all-day event. The provider's
// all-day end bound is exclusive, so the stored end is the day after the
// last stay night. Returns the event's link.
func (c *Client) CreateBookingEvent(ctx context.Context, calendarID, summary, description, location string, start, end availability.Date) (string, error) {
	if calendarID == "" {
		calendarID = c.defaultCalendarID
	}

	ev := &gcal.Event{
		Summary:     summary,
		Description: description,
		Location:    location,
		Start:       &gcal.EventDateTime{Date: start.String()},
		End:         &gcal.EventDateTime{Date: end.AddDays(1).String()},
	}

	created, err := c.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event into %q: %w", calendarID, err)
	}
	return created.HtmlLink, nil
}
