package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/internal/workers"
	"github.com/MKhiriev/go-master-password/models"
)

// siteFlags are the per-site options of generate and sites add.
type siteFlags struct {
	counter      uint32
	passwordType string
	login        string
}

func (f *siteFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint32VarP(&f.counter, "counter", "C", 0, "Site counter; bump it to get a new password (default from config)")
	cmd.Flags().StringVarP(&f.passwordType, "type", "t", "", "Password type: maximum, long, medium, short, basic, pin (default from config)")
}

func (f *siteFlags) site(userName, siteName string) (models.Site, error) {
	site := models.Site{
		UserName: userName,
		SiteName: siteName,
		Login:    f.login,
		Counter:  f.counter,
	}
	if f.passwordType != "" {
		pt, err := models.ParsePasswordType(f.passwordType)
		if err != nil {
			return models.Site{}, err
		}
		site.Type = pt
	}
	return site, nil
}

func newGenerateCmd(c *cli) *cobra.Command {
	var (
		sf             siteFlags
		masterPassword string
		copyToClip     bool
	)

	cmd := &cobra.Command{
		Use:     "generate SITE",
		Aliases: []string{"gen", "g"},
		Short:   "Print the password of a site",
		Example: `  mpw generate -u "Robert Lee Mitchell" ebay.com
  mpw generate -u "Robert Lee Mitchell" -t pin -C 2 ebay.com --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := c.log.WithContext(cmd.Context())

			userName, err := c.userName()
			if err != nil {
				return c.fail(err)
			}
			site, err := sf.site(userName, args[0])
			if err != nil {
				return c.fail(err)
			}
			if masterPassword == "" {
				if masterPassword, err = c.readPassword("Master password: "); err != nil {
					return c.fail(err)
				}
			}

			generator := service.NewGeneratorService(crypto.NewAlgorithm(), c.cfg.App, c.log)
			password, err := generator.GenerateOnce(ctx, userName, masterPassword, site)
			if err != nil {
				return c.fail(err)
			}

			if !copyToClip {
				fmt.Fprintln(c.stdout, password)
				return nil
			}
			return c.copyAndWait(ctx, password)
		},
	}

	sf.register(cmd)
	cmd.Flags().StringVarP(&masterPassword, "password", "p", "", "Master password (prompted when empty)")
	cmd.Flags().BoolVar(&copyToClip, "copy", false, "Copy the password to the clipboard instead of printing it")

	return cmd
}

// copyAndWait copies password and keeps the process alive until the
// clipboard is cleared or the user interrupts.
func (c *cli) copyAndWait(ctx context.Context, password string) error {
	cleaner := workers.NewClipboardCleaner(c.clipboard, c.cfg.App.ClipboardClearTimeout, c.log)
	if err := cleaner.Copy(password); err != nil {
		return c.fail(err)
	}

	if cleaner.Timeout() <= 0 {
		fmt.Fprintln(c.stderr, "Copied to clipboard.")
		return nil
	}

	fmt.Fprintf(c.stderr, "Copied to clipboard, clearing in %s.\n", cleaner.Timeout())

	ctx, cancel := context.WithTimeout(ctx, cleaner.Timeout())
	defer cancel()

	background := workers.NewWorkers(cleaner)
	background.Run(ctx)
	background.Wait()
	return nil
}

func newSitesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sites",
		Aliases: []string{"site"},
		Short:   "Manage the remembered sites of a user",
	}

	cmd.AddCommand(
		newSitesAddCmd(c),
		newSitesListCmd(c),
		newSitesRemoveCmd(c),
		newSitesExportCmd(c),
		newSitesImportCmd(c),
	)
	return cmd
}

// withSites opens the store, runs fn with the site service and closes the
// store again.
func (c *cli) withSites(ctx context.Context, fn func(ctx context.Context, sites service.SiteService) error) error {
	app, err := c.openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err = fn(c.log.WithContext(ctx), app.Services().SiteService); err != nil {
		return c.fail(err)
	}
	return nil
}

func newSitesAddCmd(c *cli) *cobra.Command {
	var sf siteFlags

	cmd := &cobra.Command{
		Use:   "add SITE",
		Short: "Remember a site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userName, err := c.userName()
			if err != nil {
				return c.fail(err)
			}
			site, err := sf.site(userName, args[0])
			if err != nil {
				return c.fail(err)
			}

			return c.withSites(cmd.Context(), func(ctx context.Context, sites service.SiteService) error {
				saved, err := sites.AddSite(ctx, site)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.stdout, "Added %s (counter %d, type %s)\n", saved.SiteName, saved.Counter, saved.Type)
				return nil
			})
		},
	}

	sf.register(cmd)
	cmd.Flags().StringVarP(&sf.login, "login", "l", "", "Account name on the site")
	return cmd
}

func newSitesListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List remembered sites",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userName, err := c.userName()
			if err != nil {
				return c.fail(err)
			}

			return c.withSites(cmd.Context(), func(ctx context.Context, sites service.SiteService) error {
				list, err := sites.ListSites(ctx, userName)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "SITE\tLOGIN\tTYPE\tCOUNTER\tUPDATED")
				for _, s := range list {
					login := s.Login
					if login == "" {
						login = "-"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", s.SiteName, login, s.Type, s.Counter, s.UpdatedAt.Local().Format(time.DateTime))
				}
				return w.Flush()
			})
		},
	}
}

func newSitesRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "remove SITE",
		Aliases: []string{"rm"},
		Short:   "Forget a site",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userName, err := c.userName()
			if err != nil {
				return c.fail(err)
			}

			return c.withSites(cmd.Context(), func(ctx context.Context, sites service.SiteService) error {
				site, err := sites.GetSiteByName(ctx, userName, args[0])
				if err != nil {
					return err
				}
				if err = sites.DeleteSite(ctx, site.ID); err != nil {
					return err
				}
				fmt.Fprintf(c.stdout, "Removed %s\n", site.SiteName)
				return nil
			})
		},
	}
}

func newSitesExportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the sites of a user as JSON (stdout when FILE is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userName, err := c.userName()
			if err != nil {
				return c.fail(err)
			}

			return c.withSites(cmd.Context(), func(ctx context.Context, sites service.SiteService) error {
				out := c.stdout
				if len(args) == 1 && args[0] != "-" {
					f, err := os.OpenFile(args[0], os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
					if err != nil {
						return fmt.Errorf("open export file: %w", err)
					}
					defer f.Close()
					out = f
				}

				n, err := sites.ExportSites(ctx, userName, out)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.stderr, "Exported %d sites\n", n)
				return nil
			})
		},
	}
}

func newSitesImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add or update sites from a JSON export (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSites(cmd.Context(), func(ctx context.Context, sites service.SiteService) error {
				var in io.Reader = c.stdin
				if args[0] != "-" {
					f, err := os.Open(args[0])
					if err != nil {
						return fmt.Errorf("open import file: %w", err)
					}
					defer f.Close()
					in = f
				}

				n, err := sites.ImportSites(ctx, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.stdout, "Imported %d sites\n", n)
				return nil
			})
		},
	}
}

func newTUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context())
		},
	}
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// No configuration needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(c.stdout, c.buildInfo.String())
		},
	}
}

// userName returns the configured user name or asks for it.
func (c *cli) userName() (string, error) {
	if name := strings.TrimSpace(c.cfg.App.UserName); name != "" {
		return name, nil
	}

	fmt.Fprint(c.stderr, "Your full name: ")
	name, err := c.readLine()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(name) == "" {
		return "", service.ErrEmptyUserName
	}
	return strings.TrimSpace(name), nil
}
