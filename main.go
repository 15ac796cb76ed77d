package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2"

	tea "github.com/charmbracelet/bubbletea"

	"tpeaks/internal/auth"
	"tpeaks/internal/config"
	"tpeaks/internal/service"
	"tpeaks/internal/store"
	"tpeaks/internal/tp"
	"tpeaks/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("You need to add your TrainingPeaks API credentials and username.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Check for existing auth
	storedAuth, err := db.GetAuth()
	if errors.Is(err, store.ErrNoAuth) {
		fmt.Println("No authentication found. Logging in...")
		if err := authenticate(ctx, db, cfg); err != nil {
			return fmt.Errorf("authentication: %w", err)
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return fmt.Errorf("fetching auth after login: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("checking auth: %w", err)
	}

	// Create token source for API calls (with auto-refresh)
	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.TrainingPeaks.ClientID,
		ClientSecret: cfg.TrainingPeaks.ClientSecret,
	})

	tokenSource := newTokenSource(db, oauthCfg, storedAuth)

	// Test token is valid by getting a fresh one
	if _, err := tokenSource.Token(); err != nil {
		fmt.Println("Stored token is invalid or expired. Re-authenticating...")
		if err := authenticate(ctx, db, cfg); err != nil {
			return fmt.Errorf("re-authentication: %w", err)
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return fmt.Errorf("fetching auth after login: %w", err)
		}
		tokenSource = newTokenSource(db, oauthCfg, storedAuth)
	}

	// Create services
	client := tp.NewClient(tokenSource)

	// The athlete ID comes from the user profile on first run
	if storedAuth.AthleteID == 0 {
		user, err := client.GetUser(ctx)
		if err != nil {
			return fmt.Errorf("fetching user profile: %w", err)
		}
		storedAuth.AthleteID = user.AthleteID
		if err := db.SaveAuth(storedAuth); err != nil {
			return fmt.Errorf("saving athlete ID: %w", err)
		}
	}

	syncSvc := service.NewSyncService(client, db)

	// Launch TUI
	app := tui.NewApp(db, syncSvc, storedAuth.AthleteID, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// newTokenSource builds a refreshing token source over the stored tokens,
// persisting refreshed ones back to the database
func newTokenSource(db *store.Store, oauthCfg *oauth2.Config, a *store.Auth) *auth.TokenSource {
	token := &oauth2.Token{
		AccessToken:  a.AccessToken,
		RefreshToken: a.RefreshToken,
		Expiry:       a.ExpiresAt,
	}
	return auth.NewTokenSource(oauthCfg, token, func(newToken *oauth2.Token) error {
		return db.UpdateTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
	})
}

func authenticate(ctx context.Context, db *store.Store, cfg *config.Config) error {
	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.TrainingPeaks.ClientID,
		ClientSecret: cfg.TrainingPeaks.ClientSecret,
	})

	fmt.Printf("Password for %s: ", cfg.TrainingPeaks.Username)
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	password = strings.TrimSpace(password)

	result, err := auth.Login(ctx, oauthCfg, cfg.TrainingPeaks.Username, password)
	if err != nil {
		return err
	}

	// Store the tokens; the athlete ID is filled in from the profile later
	storedAuth := &store.Auth{
		UserID:       result.UserID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
		ExpiresAt:    result.Token.Expiry,
	}

	if err := db.SaveAuth(storedAuth); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}

	fmt.Println()
	fmt.Println("Successfully authenticated!")
	return nil
}
