package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/pkg/auth"
	"github.com/findup-dz/findup-api/internal/pkg/logger"
)

// demoAccount describes a seeded login for demos.
type demoAccount struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

var demoAccounts = []demoAccount{
	{Name: "Amine Benali", Email: "demo@findup.dz", Password: "password123", Role: models.RoleUser},
	{Name: "Admin FindUp", Email: "admin@findup.dz", Password: "admin12345", Role: models.RoleAdmin},
}

// CreateDemoData seeds demo accounts and a starter catalog. It only runs when
// demo mode is enabled and is idempotent: an already-seeded database is left
// untouched.
func CreateDemoData(ctx context.Context, pool *pgxpool.Pool) error {
	var seeded bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, demoAccounts[0].Email).Scan(&seeded)
	if err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if seeded {
		logger.Debug().Msg("Demo data already present, skipping seed")
		return nil
	}

	if err := seedAccounts(ctx, pool); err != nil {
		return err
	}
	if err := seedFormations(ctx, pool); err != nil {
		return err
	}
	if err := seedJobs(ctx, pool); err != nil {
		return err
	}

	logger.Info().Msg("Demo data seeded")
	return nil
}

func seedAccounts(ctx context.Context, pool *pgxpool.Pool) error {
	for _, account := range demoAccounts {
		hashed, err := auth.HashPassword(account.Password)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO users (name, email, password, image, role)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT ON CONSTRAINT users_email_key DO NOTHING`,
			account.Name, account.Email, hashed,
			"https://ui-avatars.com/api/?name="+account.Name, account.Role)
		if err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.Email, err)
		}
	}
	return nil
}

type demoFormation struct {
	Title       string
	Description string
	Provider    string
	Category    string
	Level       models.FormationLevel
	Duration    int
	Price       float64
	Modules     []string
}

var demoFormations = []demoFormation{
	{
		Title:       "Développement Web Full-Stack",
		Description: "Formation complète HTML, CSS, JavaScript, React et Node.js pour devenir développeur web.",
		Provider:    "TechAcademy Alger",
		Category:    "informatique",
		Level:       models.LevelBeginner,
		Duration:    120,
		Price:       25000,
		Modules:     []string{"Bases du web", "JavaScript moderne", "React", "Node.js et API"},
	},
	{
		Title:       "Marketing Digital",
		Description: "SEO, réseaux sociaux et publicité en ligne pour les entreprises algériennes.",
		Provider:    "Institut du Numérique Oran",
		Category:    "marketing",
		Level:       models.LevelIntermediate,
		Duration:    60,
		Price:       18000,
		Modules:     []string{"Stratégie digitale", "SEO", "Publicité sociale"},
	},
	{
		Title:       "Comptabilité et Finance d'Entreprise",
		Description: "Principes comptables, fiscalité algérienne et gestion financière.",
		Provider:    "École de Gestion Constantine",
		Category:    "gestion",
		Level:       models.LevelBeginner,
		Duration:    90,
		Price:       20000,
		Modules:     []string{"Comptabilité générale", "Fiscalité", "Analyse financière"},
	},
}

func seedFormations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, f := range demoFormations {
		var formationID int64
		err := pool.QueryRow(ctx, `
			INSERT INTO formations (numeric_id, title, description, provider, category, level, duration, price, is_published)
			VALUES ((SELECT COALESCE(MAX(numeric_id), 0) + 1 FROM formations), $1, $2, $3, $4, $5, $6, $7, TRUE)
			RETURNING id`,
			f.Title, f.Description, f.Provider, f.Category, f.Level, f.Duration, f.Price).Scan(&formationID)
		if err != nil {
			return fmt.Errorf("failed to seed formation %q: %w", f.Title, err)
		}

		for _, moduleTitle := range f.Modules {
			_, err := pool.Exec(ctx, `
				INSERT INTO formation_modules (formation_id, title, description, duration)
				VALUES ($1, $2, '', 10)`,
				formationID, moduleTitle)
			if err != nil {
				return fmt.Errorf("failed to seed module %q: %w", moduleTitle, err)
			}
		}
	}
	return nil
}

type demoJob struct {
	Title           string
	Company         string
	Location        string
	Type            string
	Category        string
	Description     string
	Salary          string
	ExperienceLevel string
	IsRemote        bool
}

var demoJobs = []demoJob{
	{
		Title:           "Développeur Backend (temps partiel)",
		Company:         "Djezzy",
		Location:        "Alger",
		Type:            "partTime",
		Category:        "informatique",
		Description:     "Développement et maintenance d'API internes, poste adapté aux étudiants.",
		Salary:          "60000 DZD/mois",
		ExperienceLevel: "junior",
	},
	{
		Title:           "Assistant Marketing",
		Company:         "Cevital",
		Location:        "Béjaïa",
		Type:            "partTime",
		Category:        "marketing",
		Description:     "Appui aux campagnes digitales et à la gestion des réseaux sociaux.",
		Salary:          "45000 DZD/mois",
		ExperienceLevel: "junior",
	},
	{
		Title:           "Rédacteur Web Freelance",
		Company:         "Ouedkniss",
		Location:        "Alger",
		Type:            "freelance",
		Category:        "communication",
		Description:     "Rédaction d'articles et de fiches produits en français et en arabe.",
		Salary:          "1500 DZD/article",
		ExperienceLevel: "junior",
		IsRemote:        true,
	},
}

func seedJobs(ctx context.Context, pool *pgxpool.Pool) error {
	for _, j := range demoJobs {
		_, err := pool.Exec(ctx, `
			INSERT INTO jobs (numeric_id, title, company, location, type, category, description, salary, experience_level, is_remote, is_active)
			VALUES ((SELECT COALESCE(MAX(numeric_id), 0) + 1 FROM jobs), $1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)`,
			j.Title, j.Company, j.Location, j.Type, j.Category, j.Description, j.Salary, j.ExperienceLevel, j.IsRemote)
		if err != nil {
			return fmt.Errorf("failed to seed job %q: %w", j.Title, err)
		}
	}
	return nil
}
