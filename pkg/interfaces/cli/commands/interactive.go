package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dsandoval/shopplan/pkg/application/services"
	"github.com/dsandoval/shopplan/pkg/domain/entities"
	"github.com/dsandoval/shopplan/pkg/infrastructure/repositories/memory"
	"github.com/dsandoval/shopplan/pkg/interfaces/cli/output"
)

// The interactive shell owns all input validation: the planning core
// accepts whatever it is given, so malformed numerics and empty names are
// rejected here with a re-prompt, never an abort.
func interactiveCmd(logger *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Manage offices and stores through interactive prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			eventStore, err := newEventStore(logger)
			if err != nil {
				return err
			}

			svc := services.NewPlanningServiceWithConfig(
				memory.NewOfficeRepository(),
				memory.NewStoreRepository(),
				services.Config{Logger: *logger, Events: eventStore},
			)

			session := &interactiveSession{
				svc: svc,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			return session.run()
		},
	}
}

type interactiveSession struct {
	svc *services.PlanningService
	in  *bufio.Scanner
	out io.Writer
}

func (s *interactiveSession) run() error {
	for {
		fmt.Fprint(s.out, "\nSMART SHOPPING LIST\n"+
			"  1. Add office\n"+
			"  2. Add store\n"+
			"  3. Show consolidated list and comparison\n"+
			"  4. Load sample data\n"+
			"  5. Exit\n"+
			"Choice: ")

		choice, ok := s.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.addOffice()
		case "2":
			s.addStore()
		case "3":
			if err := s.showPlan(); err != nil {
				return err
			}
		case "4":
			if err := buildDemoScenario(s.svc); err != nil {
				return err
			}
			fmt.Fprintln(s.out, "Sample data loaded: 4 offices, 3 stores.")
		case "5":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1-5.")
		}
	}
}

func (s *interactiveSession) addOffice() {
	name, ok := s.promptNonEmpty("Enter office name: ")
	if !ok {
		return
	}

	office := entities.NewOffice(name)
	if err := s.svc.AddOffice(office); err != nil {
		fmt.Fprintf(s.out, "Could not add office: %v\n", err)
		return
	}

	fmt.Fprintf(s.out, "Adding supplies for %s (type 'done' when finished):\n", name)
	for {
		item, ok := s.promptItem()
		if !ok {
			break
		}

		qty, ok := s.promptQuantity(fmt.Sprintf("  Quantity for %s: ", item))
		if !ok {
			continue
		}

		s.svc.RequestSupply(office, item, qty)
		fmt.Fprintf(s.out, "  Added %d %s\n", qty, item)
	}
	fmt.Fprintf(s.out, "Office %q added.\n", name)
}

func (s *interactiveSession) addStore() {
	name, ok := s.promptNonEmpty("Enter store name: ")
	if !ok {
		return
	}

	store := entities.NewStore(name)
	if err := s.svc.AddStore(store); err != nil {
		fmt.Fprintf(s.out, "Could not add store: %v\n", err)
		return
	}

	fmt.Fprintf(s.out, "Adding prices for %s (type 'done' when finished):\n", name)
	for {
		item, ok := s.promptItem()
		if !ok {
			break
		}

		price, ok := s.promptPrice(fmt.Sprintf("  Price for %s: $", item))
		if !ok {
			continue
		}

		s.svc.SetPrice(store, item, price)
		fmt.Fprintf(s.out, "  Set %s price to $%s\n", item, price.StringFixed(2))
	}
	fmt.Fprintf(s.out, "Store %q added.\n", name)
}

func (s *interactiveSession) showPlan() error {
	report, err := s.svc.PriceComparison()
	if err != nil {
		return err
	}
	cheapest, err := s.svc.FindCheapestStore()
	if err != nil {
		return err
	}
	return output.Render(s.out, report, cheapest, "text")
}

// promptItem asks for an item name; (_, false) means the user typed 'done'
// or input ended.
func (s *interactiveSession) promptItem() (entities.ItemName, bool) {
	for {
		fmt.Fprint(s.out, "  Item name (or 'done'): ")
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		line = strings.TrimSpace(line)
		if strings.EqualFold(line, "done") {
			return "", false
		}
		if line == "" {
			fmt.Fprintln(s.out, "  Item name cannot be empty.")
			continue
		}
		return entities.ItemName(line), true
	}
}

func (s *interactiveSession) promptNonEmpty(prompt string) (string, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Fprintln(s.out, "Name cannot be empty.")
			continue
		}
		return line, true
	}
}

// promptQuantity keeps asking until it reads a positive integer.
func (s *interactiveSession) promptQuantity(prompt string) (entities.Quantity, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}

		qty, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, "  Invalid quantity. Please enter a number.")
			continue
		}
		if qty <= 0 {
			fmt.Fprintln(s.out, "  Quantity must be positive.")
			continue
		}
		return entities.Quantity(qty), true
	}
}

// promptPrice keeps asking until it reads a non-negative decimal.
func (s *interactiveSession) promptPrice(prompt string) (entities.Price, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			return decimal.Zero, false
		}

		price, err := decimal.NewFromString(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "  Invalid price. Please enter a number.")
			continue
		}
		if price.IsNegative() {
			fmt.Fprintln(s.out, "  Price cannot be negative.")
			continue
		}
		return price, true
	}
}

func (s *interactiveSession) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
