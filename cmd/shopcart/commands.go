package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"shopcart/internal/adapter/export"
	"shopcart/internal/adapter/storage"
	"shopcart/internal/config"
	"shopcart/internal/core/domain"
	"shopcart/internal/core/service"
	"shopcart/internal/port"
)

// app wires the stores and services for one command invocation. Each
// invocation is a single UI event: load state, apply one operation, persist,
// exit.
type app struct {
	cart    *service.CartService
	session *service.SessionService
	close   func() error
}

func openStore(ctx context.Context, cfg config.Config) (port.KeyValueStore, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create data dir: %w", err)
			}
		}
		st, err := storage.NewSQLiteStore(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Storage.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return storage.NewRedisStore(client), client.Close, nil

	case config.BackendMySQL:
		db, err := sql.Open("mysql", cfg.Storage.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("connect mysql: %w", err)
		}
		st, err := storage.NewMySQLStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return st, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func newApp(ctx context.Context, cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		cart:    service.NewCartService(ctx, store),
		session: service.NewSessionService(ctx, store),
		close:   closeStore,
	}, nil
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "shopcart",
		Short:         "Catalog-and-cart demo with a persistent cart and demo login",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file")

	// withApp runs fn against freshly loaded state and closes the store after.
	withApp := func(fn func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer a.close()
			return fn(ctx, a, cmd, args)
		}
	}

	var category, query string
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog products, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			products := domain.FilterProducts(domain.Catalog(), category, query)
			if len(products) == 0 {
				fmt.Println("no products match")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Category, money(p.Price), p.Stock)
			}
			return w.Flush()
		},
	}
	catalogCmd.Flags().StringVar(&category, "category", domain.CategoryAll, "category filter")
	catalogCmd.Flags().StringVar(&query, "search", "", "search product name or category")

	addCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			p, ok := domain.FindProduct(id)
			if !ok {
				return fmt.Errorf("no product with id %d", id)
			}
			if err := a.cart.AddItem(ctx, p); err != nil {
				return err
			}
			fmt.Printf("added %s\n", p.Name)
			return nil
		}),
	}

	removeCmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			return a.cart.RemoveItem(ctx, id)
		}),
	}

	qtyCmd := &cobra.Command{
		Use:   "qty <product-id> <quantity>",
		Short: "Set the quantity of a cart entry (zero or less removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			q, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			return a.cart.SetQuantity(ctx, id, q)
		}),
	}

	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart and its total",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			items := a.cart.Items()
			if len(items) == 0 {
				fmt.Println("cart is empty")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
			for _, it := range items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", it.ID, it.Name, money(it.Price), it.Quantity, money(it.Subtotal()))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("total: %s\n", money(a.cart.Total()))
			return nil
		}),
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			return a.cart.Clear(ctx)
		}),
	}

	var outPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the cart as pretty-printed JSON to a file",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if err := export.WriteFile(a.cart.Items(), outPath); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", outPath)
			return nil
		}),
	}
	exportCmd.Flags().StringVar(&outPath, "out", export.DefaultFileName, "output file")

	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the cart JSON to the system clipboard",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if err := export.CopyToClipboard(a.cart.Items()); err != nil {
				// Recoverable: the cart itself is untouched.
				return err
			}
			fmt.Println("cart copied to clipboard")
			return nil
		}),
	}

	var password string
	loginCmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Demo login (any non-empty email and password)",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			sess, err := a.session.Login(ctx, args[0], password)
			if err != nil {
				return err
			}
			fmt.Printf("logged in as %s\n", sess.Email)
			return nil
		}),
	}
	loginCmd.Flags().StringVar(&password, "password", "", "demo password (never stored)")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if err := a.session.Logout(ctx); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		}),
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user, if any",
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			sess, ok := a.session.Current()
			if !ok {
				fmt.Println("not logged in")
				return nil
			}
			fmt.Printf("%s (since %s)\n", sess.Email, sess.LoginAt.Format("2006-01-02 15:04"))
			return nil
		}),
	}

	root.AddCommand(catalogCmd, addCmd, removeCmd, qtyCmd, cartCmd, clearCmd,
		exportCmd, copyCmd, loginCmd, logoutCmd, whoamiCmd)
	return root
}

func money(minor int64) string {
	return fmt.Sprintf("$%d.%02d", minor/100, minor%100)
}
