package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/frahmantamala/employee-portal/internal/attendance"
	"github.com/frahmantamala/employee-portal/internal/core/events"
	"github.com/frahmantamala/employee-portal/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event management commands",
	Long:  `Publish portal events to the bus for testing and debugging handlers`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [event-type]",
	Short: "Publish a portal event",
	Long: `Publish one of the portal's domain events to the event bus.
Known types: ` + knownEventTypes,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return publishPortalEvent(args[0])
	},
}

const knownEventTypes = events.EventTypeUserRegistered + ", " +
	events.EventTypeAttendanceMarked + ", " +
	events.EventTypeEmployeeCreated + ", " +
	events.EventTypeEmployeeUpdated + ", " +
	events.EventTypeEmployeeDeleted

var (
	eventEmpID    int64
	eventAction   string
	eventUsername string
)

// buildPortalEvent maps an event type name onto the matching typed domain
// event, carrying the flag values as its payload.
func buildPortalEvent(eventType string, empID int64, action, username, day string) (events.Event, error) {
	switch eventType {
	case events.EventTypeAttendanceMarked:
		return events.NewAttendanceMarkedEvent(empID, action, day), nil
	case events.EventTypeUserRegistered:
		return events.NewUserRegisteredEvent(0, empID, username, "staff"), nil
	case events.EventTypeEmployeeCreated, events.EventTypeEmployeeUpdated, events.EventTypeEmployeeDeleted:
		return events.NewEmployeeChangedEvent(eventType, empID), nil
	default:
		return nil, fmt.Errorf("unknown event type %q (known: %s)", eventType, knownEventTypes)
	}
}

func publishPortalEvent(eventType string) error {
	lg := logger.LoggerWrapper()

	event, err := buildPortalEvent(eventType, eventEmpID, eventAction, eventUsername,
		time.Now().Format(attendance.DayFormat))
	if err != nil {
		return err
	}

	eventBus := events.NewEventBus(lg)
	eventBus.Subscribe(eventType, func(ctx context.Context, ev events.Event) error {
		lg.Info("debug handler received event",
			"event_id", ev.EventID(),
			"event_type", ev.EventType(),
			"payload", ev.Payload())
		return nil
	})

	lg.Info("publishing portal event", "event_type", eventType, "event_id", event.EventID())

	return eventBus.PublishSync(context.Background(), event)
}

func init() {
	publishEventCmd.Flags().Int64Var(&eventEmpID, "emp-id", 1, "Employee ID carried by the event")
	publishEventCmd.Flags().StringVar(&eventAction, "action", "checkin", "Attendance action for attendance.marked")
	publishEventCmd.Flags().StringVar(&eventUsername, "username", "debug", "Username for user.registered")

	eventCmd.AddCommand(publishEventCmd)

	rootCmd.AddCommand(eventCmd)
}
