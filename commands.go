package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/borz-social/borz/app"
	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/infra/auth"
	"github.com/borz-social/borz/infra/config"
	"github.com/borz-social/borz/infra/editor"
	"github.com/borz-social/borz/infra/graphql"
	"github.com/borz-social/borz/infra/logger"
	"github.com/borz-social/borz/infra/tracing"
	"github.com/borz-social/borz/tui"
)

type options struct {
	configPath string
	debug      bool
}

func (o *options) path() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// load reads the config and starts the log file next to it.
func (o *options) load() (config.Config, error) {
	path, err := o.path()
	if err != nil {
		return config.Config{}, err
	}
	if err := logger.Init(config.LogPath(path), o.debug); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	v, c, d := resolvedRuntimeVersionInfo(version, commit, date)

	root := &cobra.Command{
		Use:   "borz",
		Short: "A command line interface for the Borz social networking platform",
		Long: `borz browses the groups, threads and profiles of a Borz server and
posts replies, all inside the terminal. Run "borz login" first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	root.Version = v
	root.SetVersionTemplate(versionTemplate(v, c, d))
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/borz/config.json)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newCleanCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newSignupCmd(opts),
		newVerifyCmd(opts),
	)
	return root
}

func runTUI(ctx context.Context, opts *options) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	defer logger.Close()

	v, _, _ := resolvedRuntimeVersionInfo(version, commit, date)
	shutdown, err := tracing.Setup(ctx, v)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.ComponentLogger("tracing").Warn("flushing spans failed", "error", err)
		}
	}()

	anon := graphql.NewClient(cfg.Server, nil)
	tokens, err := tokenProvider(cfg, graphql.NewAccountService(anon))
	if err != nil {
		return err
	}
	source := graphql.NewSource(anon.WithTokens(tokens))

	m := tui.NewApp(tui.Deps{
		Source:   source,
		Editor:   editor.NewEnvEditor(),
		Username: cfg.Username,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	if a, ok := final.(tui.App); ok && a.Err() != nil {
		return a.Err()
	}
	return nil
}

// tokenProvider authenticates the TUI with a refreshing session when logged
// in, or with a fixed BORZ_TOKEN when only that is set.
func tokenProvider(cfg config.Config, r auth.Refresher) (auth.TokenProvider, error) {
	if cfg.LoggedIn() {
		return auth.NewSession(cfg, r), nil
	}
	if strings.TrimSpace(cfg.Token) != "" {
		return auth.StaticToken(cfg.Token), nil
	}
	return nil, errors.New(`not logged in: run "borz login" first`)
}

func newCleanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Deletes all configuration and cache files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := opts.path()
			if err != nil {
				return err
			}
			if err := config.Clean(path); err != nil {
				return err
			}
			cmd.Println("Successfully removed all cached and config data.")
			return nil
		},
	}
}

func newLoginCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Logs in to your Borz account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			defer logger.Close()
			accounts := graphql.NewAccountService(graphql.NewClient(cfg.Server, nil))
			return runLogin(cmd.Context(), newPrompter(cmd), accounts, cfg)
		},
	}
}

func runLogin(ctx context.Context, p *prompter, accounts auth.Authenticator, cfg config.Config) error {
	username, err := p.line("Enter your username: ")
	if err != nil {
		return err
	}
	password, err := p.password("Enter your password: ")
	if err != nil {
		return err
	}
	cfg, err = auth.Login(ctx, accounts, cfg, username, password)
	if errors.Is(err, domain.ErrEmptyCredentials) {
		return errors.New("username and password cannot be empty")
	}
	if err != nil {
		return err
	}
	p.printf("Logged in as %s.\n", cfg.Username)
	return nil
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logs out of your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			defer logger.Close()
			if _, err := auth.Logout(cfg); err != nil {
				return err
			}
			cmd.Println("Logged out.")
			return nil
		},
	}
}

func newSignupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Creates a new Borz account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			defer logger.Close()
			accounts := graphql.NewAccountService(graphql.NewClient(cfg.Server, nil))
			return runSignup(cmd.Context(), newPrompter(cmd), accounts)
		},
	}
}

func runSignup(ctx context.Context, p *prompter, accounts app.AccountService) error {
	email, err := p.line("Enter your email: ")
	if err != nil {
		return err
	}
	username, err := p.line("Enter a username: ")
	if err != nil {
		return err
	}
	password, err := p.password("Enter a password: ")
	if err != nil {
		return err
	}
	check, err := p.password("Re-enter your password: ")
	if err != nil {
		return err
	}
	if password != check {
		return fmt.Errorf("entered passwords must match: %w", domain.ErrPasswordMismatch)
	}
	if err := accounts.Register(ctx, email, username, password); err != nil {
		if errors.Is(err, domain.ErrEmptyCredentials) {
			return errors.New("username and password cannot be empty")
		}
		return err
	}
	p.printf("Account created. Check %s for a verification token, then run \"borz verify\".\n", email)
	return nil
}

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [token]",
		Short: "Verifies the email of a new account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			defer logger.Close()
			accounts := graphql.NewAccountService(graphql.NewClient(cfg.Server, nil))
			token := ""
			if len(args) == 1 {
				token = args[0]
			}
			return runVerify(cmd.Context(), newPrompter(cmd), accounts, token)
		},
	}
}

func runVerify(ctx context.Context, p *prompter, accounts app.AccountService, token string) error {
	if token == "" {
		var err error
		if token, err = p.line("Enter the verification token from your email: "); err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("verification token cannot be empty")
	}
	if err := accounts.Verify(ctx, token); err != nil {
		return err
	}
	p.printf("Account verified. You can now run \"borz login\".\n")
	return nil
}
