package event

import (
	"fmt"
	"net/url"
	"time"

	ics "github.com/arran4/golang-ical"
)

// BuildICS renders the event as an iCalendar file, usable by Apple
// Calendar and any other ICS consumer.
func BuildICS(e *Event, roomName string) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//UniTeam//Booking//FR")

	ev := cal.AddEvent(fmt.Sprintf("event-%d@uniteam", e.ID))
	ev.SetCreatedTime(e.CreatedAt)
	ev.SetDtStampTime(time.Now())
	ev.SetStartAt(e.DateStart)
	ev.SetEndAt(e.DateEnd)
	ev.SetSummary(e.Name)
	if e.Description != "" {
		ev.SetDescription(e.Description)
	}
	if roomName != "" {
		ev.SetLocation(roomName)
	}
	ev.SetOrganizer(e.HostName)

	return cal.Serialize()
}

// CalendarLinks bundles the add-to-calendar URLs of an event.
type CalendarLinks struct {
	Google  string `json:"google"`
	Outlook string `json:"outlook"`
	ICS     string `json:"ics"`
}

const googleDateLayout = "20060102T150405Z"

// BuildCalendarLinks produces the Google and Outlook deep links plus the
// path of the ICS download served by this API.
func BuildCalendarLinks(e *Event, roomName string) CalendarLinks {
	start := e.DateStart.UTC()
	end := e.DateEnd.UTC()

	googleParams := url.Values{}
	googleParams.Set("action", "TEMPLATE")
	googleParams.Set("text", e.Name)
	googleParams.Set("dates", start.Format(googleDateLayout)+"/"+end.Format(googleDateLayout))
	if e.Description != "" {
		googleParams.Set("details", e.Description)
	}
	if roomName != "" {
		googleParams.Set("location", roomName)
	}

	outlookParams := url.Values{}
	outlookParams.Set("path", "/calendar/action/compose")
	outlookParams.Set("subject", e.Name)
	outlookParams.Set("startdt", start.Format(time.RFC3339))
	outlookParams.Set("enddt", end.Format(time.RFC3339))
	if e.Description != "" {
		outlookParams.Set("body", e.Description)
	}
	if roomName != "" {
		outlookParams.Set("location", roomName)
	}

	return CalendarLinks{
		Google:  "https://calendar.google.com/calendar/render?" + googleParams.Encode(),
		Outlook: "https://outlook.live.com/calendar/0/deeplink/compose?" + outlookParams.Encode(),
		ICS:     fmt.Sprintf("/api/v1/events/%d/ics", e.ID),
	}
}
