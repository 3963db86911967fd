package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appFAQ "github.com/avestaexchange/avesta/internal/application/faq"
	appTestimonial "github.com/avestaexchange/avesta/internal/application/testimonial"
	userDTO "github.com/avestaexchange/avesta/internal/application/user/dto"
	"github.com/avestaexchange/avesta/internal/application/user/usecases"
	"github.com/avestaexchange/avesta/internal/infrastructure/auth"
	"github.com/avestaexchange/avesta/internal/infrastructure/config"
	"github.com/avestaexchange/avesta/internal/infrastructure/database"
	"github.com/avestaexchange/avesta/internal/infrastructure/repository"
	"github.com/avestaexchange/avesta/internal/shared/authorization"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/services/markdown"
)

var (
	env      string
	filePath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the admin account and load initial content",
		Long: `Create the configured super admin if no account uses its email, then load
FAQs and testimonials from a YAML file into empty tables.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Seed YAML file with faqs and testimonials")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("seed")

	var file *File
	if filePath != "" {
		if file, err = LoadFile(filePath); err != nil {
			return err
		}
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	userRepo := repository.NewUserRepository(db, log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	users := usecases.NewManageUsersUseCase(userRepo, hasher, log)

	if err := seedAdmin(ctx, users, cfg, log); err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	faqRepo := repository.NewFAQRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	s := &seeder{
		faqs:              appFAQ.NewService(faqRepo, markdown.NewRenderer(), log),
		testimonials:      appTestimonial.NewService(testimonialRepo, log),
		countFAQs:         faqRepo.Count,
		countTestimonials: testimonialRepo.Count,
		logger:            log,
	}
	return s.load(ctx, file)
}

func seedAdmin(ctx context.Context, users *usecases.ManageUsersUseCase, cfg *config.Config, log logger.Interface) error {
	if strings.TrimSpace(cfg.Seed.AdminPassword) == "" {
		log.Warnw("seed.admin_password is empty, skipping admin account")
		return nil
	}

	created, err := users.EnsureUser(ctx, userDTO.CreateUserRequest{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Role:     authorization.RoleSuperAdmin.String(),
	})
	if err != nil {
		return err
	}
	if created {
		log.Infow("admin account created", "email", cfg.Seed.AdminEmail)
	} else {
		log.Infow("admin account already exists", "email", cfg.Seed.AdminEmail)
	}
	return nil
}
