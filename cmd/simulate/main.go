// Command simulate runs one fully simulated session in the terminal: no HTTP,
// no real providers, just the coordination engine talking to itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"echo-lab/classify"
	"echo-lab/domain"
	"echo-lab/runtime"
	"echo-lab/runtime/workers"
	"echo-lab/services"
	"echo-lab/switchboard"
	"echo-lab/synthesis"
)

var roleColors = map[domain.Role]color.Color{
	domain.RoleFacilitator: color.FgGreen,
	domain.RoleContributor: color.FgCyan,
	domain.RoleObserver:    color.FgYellow,
	domain.RoleSynthesizer: color.FgMagenta,
}

func main() {
	topic := flag.String("topic", "the nature of emergence in complex systems", "Discussion topic")
	sessionType := flag.String("type", string(domain.SessionBrainstorming), "Session type")
	participants := flag.Int("participants", 5, "Participant count (1-7)")
	duration := flag.Duration("duration", 30*time.Second, "How long to let the session run")
	level := flag.String("level", "WARN", "Log level")
	flag.Parse()

	logger := logs.GetLoggerFromString(*level)

	personas, err := runtime.LoadPersonaCatalog()
	if err != nil {
		log.Fatalf("Persona catalog: %v", err)
	}
	classifier, err := classify.New()
	if err != nil {
		log.Fatalf("Classifier: %v", err)
	}

	seed := time.Now().UnixNano()
	board := switchboard.New() // untouched: every participant stays simulated
	selector := runtime.NewTurnSelector(rand.New(rand.NewSource(seed)))
	responder := runtime.NewResponder(logger, board, nil,
		func(switchboard.ProviderID) string { return "" },
		rand.New(rand.NewSource(seed+1)))

	supervisor := workers.NewSupervisor(logger, 200*time.Millisecond)
	engine := runtime.NewEngine(logger, selector, responder, supervisor,
		rand.New(rand.NewSource(seed+2)))
	service := services.NewSessionService(logger, engine, classifier, synthesis.NewGenerator(), personas)
	engine.Bind(service)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	engine.Start(ctx)

	// Print every message as it lands. Snapshots arrive from several
	// goroutines, so the cursor needs a lock.
	var printMu sync.Mutex
	printed := 0
	unsubscribe := service.AddListener(func(session domain.GroupSession) {
		printMu.Lock()
		defer printMu.Unlock()
		for _, m := range session.Messages[printed:] {
			printMessage(session, m)
			printed++
		}
	})
	defer unsubscribe()

	session, err := service.CreateSession(ctx, domain.CreateSessionCommand{
		Name:             "Simulated exploration",
		Topic:            *topic,
		Description:      "Terminal run without external providers",
		ParticipantCount: *participants,
		SessionType:      domain.SessionType(*sessionType),
	})
	if err != nil {
		log.Fatalf("Create session: %v", err)
	}

	// Seed the discussion from the facilitator's side.
	if _, err := service.SendMessage(ctx, domain.SendMessageCommand{
		SessionID:     session.ID,
		ParticipantID: session.FacilitatorID,
		Content:       fmt.Sprintf("Let's explore %s together. What patterns do you each notice?", *topic),
	}); err != nil {
		log.Fatalf("Seed message: %v", err)
	}

	time.Sleep(*duration)

	if err := service.EndSession(session.ID); err != nil {
		log.Fatalf("End session: %v", err)
	}
	final, err := service.Session(session.ID)
	if err != nil {
		log.Fatalf("Final snapshot: %v", err)
	}
	cancel()

	printSummary(final)
}

func printMessage(session domain.GroupSession, m domain.Message) {
	name := "unknown"
	role := domain.RoleContributor
	if author := session.Participant(m.ParticipantID); author != nil {
		name = author.Name
		role = author.Role
	}

	c, ok := roleColors[role]
	if !ok {
		c = color.FgDefault
	}
	fmt.Printf("%s %s %s\n",
		m.Timestamp.Format("15:04:05"),
		c.Render(fmt.Sprintf("%-8s", name)),
		m.Content)
}

func printSummary(session domain.GroupSession) {
	fmt.Println()
	color.New(color.BgBlack, color.FgGreen).Println("Session summary")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Participant", "Role", "Messages", "Last activity"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, p := range session.Participants {
		table.Append([]string{
			p.Avatar + " " + p.Name,
			string(p.Role),
			fmt.Sprintf("%d", p.MessageCount),
			p.LastActivity.Format("15:04:05"),
		})
	}
	table.Render()

	if synthesisMessage, _, ok := lo.FindLastIndexOf(session.Messages, func(m domain.Message) bool {
		return m.Type == domain.TypeSynthesis
	}); ok {
		fmt.Println()
		fmt.Println(synthesisMessage.Content)
	}
}
