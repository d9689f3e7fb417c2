package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pss-assistant/core/entity"
	"pss-assistant/feature/crew"
	"pss-assistant/feature/item"

	"github.com/spf13/cobra"
)

// roomCmd represents the room command
var roomCmd = &cobra.Command{
	Use:   "room <name>",
	Short: "Show details of a room",
	Long:  `Looks up rooms by name or short name (e.g. "ion", "AMS") and prints their details.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, func(ctx context.Context, r *runtime, name string) (entity.Result, error) {
			feature, err := r.roomFeature()
			if err != nil {
				return entity.Result{}, err
			}
			return feature.Service().GetRoomDetailsByName(ctx, name, false)
		})
	},
}

// itemCmd represents the item command
var itemCmd = &cobra.Command{
	Use:   "item <name>",
	Short: "Show details of an item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, func(ctx context.Context, r *runtime, name string) (entity.Result, error) {
			return item.NewService(r.items, r.logg).GetItemDetailsByName(ctx, name, false)
		})
	},
}

// crewCmd represents the crew command
var crewCmd = &cobra.Command{
	Use:   "crew <name>",
	Short: "Show details of a crew character",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, args, func(ctx context.Context, r *runtime, name string) (entity.Result, error) {
			return crew.NewService(r.characters, r.collections, r.logg).GetCharacterDetailsByName(ctx, name, false)
		})
	},
}

// levelCmd represents the level command
var levelCmd = &cobra.Command{
	Use:   "level <from> <to>",
	Short: "Show gas and xp needed to level a crew",
	Long:  `Sums the gas and experience needed to train a crew from one level to another. Use --legendary for legendary crew.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid from level %q: %w", args[0], crew.ErrInvalidLevel)
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid to level %q: %w", args[1], crew.ErrInvalidLevel)
		}
		legendary, _ := cmd.Flags().GetBool("legendary")

		cost, err := crew.LevelCosts(from, to, legendary)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderResult(entity.Result{Found: true, Lines: cost.Lines()}))
		return nil
	},
}

type queryFunc func(ctx context.Context, r *runtime, name string) (entity.Result, error)

func runQuery(cmd *cobra.Command, args []string, query queryFunc) error {
	r, err := newRuntime()
	if err != nil {
		return err
	}
	defer r.logg.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout(r.cfg))
	defer cancel()

	name := strings.Join(args, " ")
	result, err := query(ctx, r, name)
	if errors.Is(err, entity.ErrInvalidName) {
		fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render(err.Error()))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderResult(result))
	return nil
}

func init() {
	RootCmd.AddCommand(roomCmd, itemCmd, crewCmd, levelCmd)
	levelCmd.Flags().Bool("legendary", false, "Use legendary crew costs")
}
