package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/roivaz/hubspot-mcp-bridge/internal/config"
	"github.com/roivaz/hubspot-mcp-bridge/internal/hubspot"
	"github.com/roivaz/hubspot-mcp-bridge/internal/logging"
)

// smoke exercises the five CRM operations in sequence against a live HubSpot
// account. It creates real records; run it against a test portal.
func main() {
	root := &cobra.Command{Use: "smoke"}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the five HubSpot operations against a live account and report pass/fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.AccessToken() == "" {
				return fmt.Errorf("HUBSPOT_ACCESS_TOKEN is not set")
			}
			return runAll(cmd.Context())
		},
	}

	root.AddCommand(cmd)

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("smoke: %v", err)
	}
}

type step struct {
	name string
	fn   func(ctx context.Context) error
}

func runAll(ctx context.Context) error {
	client := hubspot.NewClient(hubspot.Config{
		BaseURL:     config.BaseURL(),
		AccessToken: config.AccessToken(),
		Timeout:     config.HTTPTimeout(),
		Logger:      logging.New(logging.ForLevel(config.LogLevel()).WithName("smoke")),
	})

	// Pace calls to stay under the configured requests-per-second hint. This
	// is a courtesy wait, not rate-limit handling; a 429 still fails the step.
	pause := time.Duration(0)
	if rps := config.MaxRPS(); rps > 0 {
		pause = time.Second / time.Duration(rps)
	}

	email := fmt.Sprintf("smoke_%d_%s@example.com", time.Now().Unix(), uuid.NewString()[:6])
	var contactID string

	steps := []step{
		{name: "create_contact", fn: func(ctx context.Context) error {
			raw, err := client.CreateContact(ctx, hubspot.ContactProperties{
				Email:     email,
				FirstName: "Smoke",
				LastName:  "Runner",
			})
			if err != nil {
				return err
			}
			contactID = gjson.GetBytes(raw, "id").String()
			if contactID == "" {
				return fmt.Errorf("response has no id")
			}
			fmt.Printf("  created contact id=%s email=%s\n", contactID, email)
			return nil
		}},
		{name: "search_contacts", fn: func(ctx context.Context) error {
			contacts, err := client.SearchContacts(ctx, "smoke", 10)
			if err != nil {
				return err
			}
			fmt.Printf("  search returned %d contact(s)\n", len(contacts))
			return nil
		}},
		{name: "get_contact", fn: func(ctx context.Context) error {
			raw, err := client.GetContact(ctx, contactID)
			if err != nil {
				return err
			}
			if got := gjson.GetBytes(raw, "properties.email").String(); got != email {
				return fmt.Errorf("email mismatch: got %q want %q", got, email)
			}
			fmt.Printf("  fetched contact id=%s\n", contactID)
			return nil
		}},
		{name: "update_contact", fn: func(ctx context.Context) error {
			if _, err := client.UpdateContact(ctx, contactID, map[string]string{"phone": "+15555550123"}); err != nil {
				return err
			}
			raw, err := client.GetContact(ctx, contactID)
			if err != nil {
				return err
			}
			if got := gjson.GetBytes(raw, "properties.phone").String(); got != "+15555550123" {
				return fmt.Errorf("phone not updated: got %q", got)
			}
			if got := gjson.GetBytes(raw, "properties.email").String(); got != email {
				return fmt.Errorf("email changed by update: got %q", got)
			}
			fmt.Printf("  updated contact id=%s phone set\n", contactID)
			return nil
		}},
		{name: "create_deal", fn: func(ctx context.Context) error {
			raw, err := client.CreateDeal(ctx, hubspot.DealProperties{
				Name:   "Smoke test deal",
				Amount: "1000",
				Stage:  "appointmentscheduled",
			})
			if err != nil {
				return err
			}
			fmt.Printf("  created deal id=%s\n", gjson.GetBytes(raw, "id").String())
			return nil
		}},
	}

	passed, failed := 0, 0
	for i, s := range steps {
		if i > 0 && pause > 0 {
			time.Sleep(pause)
		}
		fmt.Printf("[%d/%d] %s\n", i+1, len(steps), s.name)
		if err := s.fn(ctx); err != nil {
			failed++
			fmt.Printf("  FAIL: %v\n", err)
			continue
		}
		passed++
	}

	fmt.Printf("\n%d passed, %d failed. Test records were created; delete them manually if desired.\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("%d step(s) failed", failed)
	}
	return nil
}
