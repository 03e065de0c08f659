package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/hub-schedules/internal/app"
	dbpkg "github.com/BruksfildServices01/hub-schedules/internal/db"
	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/dto"
	"github.com/BruksfildServices01/hub-schedules/internal/timezone"
)

var (
	hubFlag  string
	atFlag   string
	dateFlag string
)

var isOpenCmd = &cobra.Command{
	Use:   "is-open",
	Short: "Print whether a hub is open at an instant",
	Example: `  hub-schedules is-open --hub 6f1c... --at 2026-12-24T10:00:00+01:00
  hub-schedules is-open --hub 6f1c... --at 2026-12-24T10:00`,
	RunE: runIsOpen,
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Print the appointment slots of a hub on a date",
	RunE:  runSlots,
}

func init() {
	for _, c := range []*cobra.Command{isOpenCmd, slotsCmd} {
		c.Flags().StringVar(&hubFlag, "hub", "", "Hub id (uuid)")
		_ = c.MarkFlagRequired("hub")
	}
	isOpenCmd.Flags().StringVar(&atFlag, "at", "", "Instant as RFC3339, or YYYY-MM-DDTHH:MM in the hub timezone (default now)")
	slotsCmd.Flags().StringVar(&dateFlag, "date", "", "Date as YYYY-MM-DD")
	_ = slotsCmd.MarkFlagRequired("date")
}

// queryApp builds the use cases without cache or metrics; the CLI only reads.
func queryApp() (*app.App, uuid.UUID, error) {
	hubID, err := uuid.Parse(hubFlag)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("invalid --hub: %w", err)
	}
	db, err := dbpkg.Open(cfg)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return app.New(db, nil, cfg, nil, logger), hubID, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runIsOpen(cmd *cobra.Command, args []string) error {
	a, hubID, err := queryApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	at := time.Now()
	if atFlag != "" {
		s, err := a.GetSettings.Execute(ctx, hubID)
		if err != nil {
			return err
		}
		if at, err = timezone.ParseInstant(atFlag, s.Location()); err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
	}

	res, err := a.ResolveStatus.Execute(ctx, hubID, at)
	if err != nil {
		return err
	}
	return printJSON(cmd, dto.Status(res.Status, res.Date, res.Time, res.Timezone))
}

func runSlots(cmd *cobra.Command, args []string) error {
	date, err := domain.ParseDate(dateFlag)
	if err != nil {
		return fmt.Errorf("invalid --date: %w", err)
	}

	a, hubID, err := queryApp()
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.DateSlots.Execute(cmd.Context(), hubID, date)
	if err != nil {
		return err
	}
	return printJSON(cmd, dto.SlotsDTO{
		Date:         res.Date.Format(domain.DateLayout),
		Source:       string(res.Source),
		SlotDuration: res.Stride,
		Slots:        domain.FormatSlots(res.Slots),
	})
}
