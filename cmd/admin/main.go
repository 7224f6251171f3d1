// Инструмент администратора/эксперта: просмотр неотвеченных вопросов,
// верифицированные ответы, загрузка контента и выгрузки.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/teen-support/internal/config"
	pgRepo "github.com/yourusername/teen-support/internal/repository/postgres"
	"github.com/yourusername/teen-support/internal/service"
	"github.com/yourusername/teen-support/internal/ui"
	"github.com/yourusername/teen-support/pkg/database"
)

// adminContext собирает сервисы, нужные админ-командам
type adminContext struct {
	cfg       *config.Config
	expertSvc *service.ExpertService
	qnaSvc    *service.QnAService
	eduSvc    *service.EducationService
	resSvc    *service.ResourceService
	exportSvc *service.ExportService
	seedSvc   *service.SeedService
}

// setup подключается к БД и собирает сервисы
func setup() (*adminContext, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := pgRepo.NewUserRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	answerRepo := pgRepo.NewAnswerRepo(db)
	moduleRepo := pgRepo.NewModuleRepo(db)
	progressRepo := pgRepo.NewProgressRepo(db)
	resourceRepo := pgRepo.NewResourceRepo(db)
	statsRepo := pgRepo.NewStatsRepo(db)

	return &adminContext{
		cfg:       cfg,
		expertSvc: service.NewExpertService(questionRepo, answerRepo),
		qnaSvc:    service.NewQnAService(questionRepo, answerRepo, statsRepo),
		eduSvc:    service.NewEducationService(moduleRepo, progressRepo),
		resSvc:    service.NewResourceService(resourceRepo),
		exportSvc: service.NewExportService(questionRepo, answerRepo),
		seedSvc:   service.NewSeedService(userRepo, questionRepo, answerRepo, statsRepo),
	}, nil
}

func newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List unanswered questions, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := setup()
			if err != nil {
				return err
			}

			questions, err := ctx.expertSvc.PendingQuestions()
			if err != nil {
				return err
			}

			if len(questions) == 0 {
				fmt.Println("No pending questions.")
				return nil
			}

			fmt.Printf("%d pending question(s):\n\n", len(questions))
			for _, q := range questions {
				fmt.Printf("#%d [%s] asked %s\n", q.ID, q.Category, ui.FormatDate(q.CreatedAt))
				fmt.Println(ui.WrapText(q.Text, 70))
				fmt.Println(strings.Repeat("-", 70))
			}
			return nil
		},
	}
}

func newAnswerCmd() *cobra.Command {
	var questionID uint
	var text string

	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Post a verified expert answer to a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := setup()
			if err != nil {
				return err
			}

			answer, err := ctx.expertSvc.AnswerAsExpert(questionID, text)
			if err != nil {
				return err
			}

			fmt.Printf("Verified answer #%d posted to question #%d.\n", answer.ID, questionID)
			return nil
		},
	}

	cmd.Flags().UintVar(&questionID, "question", 0, "question ID to answer")
	cmd.Flags().StringVar(&text, "text", "", "answer text")
	cmd.MarkFlagRequired("question")
	cmd.MarkFlagRequired("text")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var samples bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load default educational modules and support resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := setup()
			if err != nil {
				return err
			}

			if err := ctx.eduSvc.EnsureDefaultModules(); err != nil {
				return err
			}
			if err := ctx.resSvc.EnsureDefaultResources(); err != nil {
				return err
			}

			if samples {
				if err := ctx.seedSvc.LoadSampleData(); err != nil {
					return err
				}
			}

			fmt.Println("Default content is in place.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&samples, "samples", false, "also load sample Q&A data for manual testing")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show live system statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := setup()
			if err != nil {
				return err
			}

			stats, err := ctx.qnaSvc.GetStats()
			if err != nil {
				return err
			}

			fmt.Printf("Total questions:        %d\n", stats.TotalQuestions)
			fmt.Printf("Answered questions:     %d (%.1f%%)\n", stats.AnsweredQuestions, stats.AnsweredPercent)
			fmt.Printf("Pending questions:      %d\n", stats.PendingQuestions)
			fmt.Printf("Total answers:          %d\n", stats.TotalAnswers)
			fmt.Printf("Active users:           %d\n", stats.ActiveUsers)
			fmt.Printf("Questions asked (ever): %d\n", stats.TotalQuestionsAsked)
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var output string
	var limit int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export answered questions to an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := setup()
			if err != nil {
				return err
			}

			if output == "" {
				name := fmt.Sprintf("qna-export-%s.xlsx", time.Now().Format("20060102-150405"))
				output = filepath.Join(ctx.cfg.App.ExportDir, name)
			}

			if err := ctx.exportSvc.ExportQuestions(output, limit); err != nil {
				return err
			}

			fmt.Printf("Export written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: export dir from config)")
	cmd.Flags().IntVar(&limit, "limit", 1000, "maximum number of questions to export")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Teen support system administration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPendingCmd(),
		newAnswerCmd(),
		newSeedCmd(),
		newStatsCmd(),
		newExportCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
