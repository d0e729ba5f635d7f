package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uzochukwuV/massacombat/internal/config"
	"github.com/uzochukwuV/massacombat/internal/errors"
	redisclient "github.com/uzochukwuV/massacombat/internal/redis"
	battlerepo "github.com/uzochukwuV/massacombat/internal/repositories/battle"
	characterrepo "github.com/uzochukwuV/massacombat/internal/repositories/character"
)

// Key prefixes of records that are not battles or characters themselves
var skippedPrefixes = []string{"battle:lock:", "battle:events:", "character:owner:"}

var deleteCorrupt bool

var checkStoreCmd = &cobra.Command{
	Use:   "check-store",
	Short: "Find Redis battle and character records that no longer decode",
	Long: `Scan the Redis store for battles and characters that fail to load.
With --delete the corrupt keys are removed after confirmation.`,
	Args: cobra.NoArgs,
	RunE: runCheckStore,
}

func init() {
	checkStoreCmd.Flags().BoolVar(&deleteCorrupt, "delete", false, "Delete corrupt keys after confirmation")
}

func runCheckStore(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Storage != config.StorageRedis {
		return fmt.Errorf("check-store needs BATTLE_STORAGE=redis, got %q", cfg.Storage)
	}

	st, err := newRedisStores(cfg)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range st.closers {
			_ = c() // nolint:errcheck // process is exiting
		}
	}()

	checker := &storeChecker{client: st.client, battles: st.battles, characters: st.characters}
	fmt.Fprintf(cmd.OutOrStdout(), "Scanning %s for corrupt records...\n", cfg.RedisAddr)
	return checker.run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), deleteCorrupt)
}

// storeChecker loads every stored battle and character through its repository
type storeChecker struct {
	client     redisclient.Client
	battles    battlerepo.Repository
	characters characterrepo.Repository
}

// scan returns how many records were checked and the keys that failed to load
func (c *storeChecker) scan(ctx context.Context) (int, []string, error) {
	var checked int
	var corrupt []string

	loaders := map[string]func(id string) error{
		"battle:": func(id string) error {
			_, err := c.battles.Get(ctx, battlerepo.GetInput{ID: id})
			return err
		},
		"character:": func(id string) error {
			_, err := c.characters.Get(ctx, characterrepo.GetInput{ID: id})
			return err
		},
	}

	for _, prefix := range []string{"battle:", "character:"} {
		iter := c.client.ScanType(ctx, 0, prefix+"*", 0, "string").Iterator()
		for iter.Next(ctx) {
			key := iter.Val()
			if skipped(key) {
				continue
			}
			checked++

			if err := loaders[prefix](strings.TrimPrefix(key, prefix)); err != nil {
				if errors.IsNotFound(err) {
					continue
				}
				if !errors.HasReason(err, errors.ReasonCorruptState) {
					return checked, corrupt, errors.Wrapf(err, "failed to load %s", key)
				}
				corrupt = append(corrupt, key)
			}
		}
		if err := iter.Err(); err != nil {
			return checked, corrupt, errors.Wrapf(err, "failed to scan %s*", prefix)
		}
	}

	return checked, corrupt, nil
}

func (c *storeChecker) run(ctx context.Context, in io.Reader, out io.Writer, remove bool) error {
	checked, corrupt, err := c.scan(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Checked %d keys, found %d corrupt entries\n", checked, len(corrupt))
	if len(corrupt) == 0 {
		return nil
	}
	for _, key := range corrupt {
		fmt.Fprintf(out, "  - %s\n", key)
	}
	if !remove {
		return nil
	}

	fmt.Fprint(out, "Delete these keys? (yes/no): ")
	answer, _ := bufio.NewReader(in).ReadString('\n')
	if strings.TrimSpace(answer) != "yes" {
		fmt.Fprintln(out, "Aborted, no changes made")
		return nil
	}

	for _, key := range corrupt {
		if err := c.client.Del(ctx, key).Err(); err != nil {
			fmt.Fprintf(out, "Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Fprintf(out, "Deleted %s\n", key)
	}
	return nil
}

func skipped(key string) bool {
	for _, p := range skippedPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}
