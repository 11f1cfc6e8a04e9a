package client

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
)

var (
	spellLevel  int32
	classFilter string
	slotsLevel  int32
)

var listRacesCmd = &cobra.Command{
	Use:   "list-races",
	Short: "List all available races",
	Long:  `List all races with their ability bonuses, speed and subraces.`,
	RunE:  runListRaces,
}

var listClassesCmd = &cobra.Command{
	Use:   "list-classes",
	Short: "List all available classes",
	RunE:  runListClasses,
}

var getClassCmd = &cobra.Command{
	Use:   "get-class [class-id]",
	Short: "Get details for a specific class",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetClass,
}

var listSpellsCmd = &cobra.Command{
	Use:   "list-spells",
	Short: "List spells, optionally by class and level",
	Long: `List spells from the catalog. Use --level to filter by spell level (0 = cantrips)
and --class to filter by class id.`,
	RunE: runListSpells,
}

var spellSlotsCmd = &cobra.Command{
	Use:   "spell-slots [class-id]",
	Short: "Show the total spell slots of a class at a level",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpellSlots,
}

func init() {
	listSpellsCmd.Flags().Int32Var(&spellLevel, "level", -1, "Spell level to filter by (0-9, where 0 = cantrips)")
	listSpellsCmd.Flags().StringVar(&classFilter, "class", "", "Class to filter by (optional)")
	spellSlotsCmd.Flags().Int32Var(&slotsLevel, "level", 1, "Character level (1-20)")
}

func formatBonuses(bonuses map[string]int32) string {
	parts := make([]string, 0, len(bonuses))
	for ability, bonus := range bonuses {
		parts = append(parts, fmt.Sprintf("%s %+d", ability, bonus))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func runListRaces(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	log.Printf("Requesting races from %s...", serverAddr)

	resp, err := client.ListRaces(ctx, &arcanumv1alpha1.ListRacesRequest{})
	if err != nil {
		return fmt.Errorf("failed to list races: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Found %d races:\n\n", len(resp.Races))
	for _, race := range resp.Races {
		fmt.Printf("%s (ID: %s)\n", race.DisplayName, race.ID)
		fmt.Printf("   Speed: %d ft\n", race.Speed)
		fmt.Printf("   Size: %s\n", race.Size)
		if len(race.AbilityBonuses) > 0 {
			fmt.Printf("   Ability Bonuses: %s\n", formatBonuses(race.AbilityBonuses))
		}
		for _, subrace := range race.Subraces {
			fmt.Printf("   - %s (%s)", subrace.DisplayName, subrace.ID)
			if len(subrace.AbilityBonuses) > 0 {
				fmt.Printf(" %s", formatBonuses(subrace.AbilityBonuses))
			}
			fmt.Println()
		}
		fmt.Println()
	}
	return nil
}

func runListClasses(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListClasses(ctx, &arcanumv1alpha1.ListClassesRequest{})
	if err != nil {
		return fmt.Errorf("failed to list classes: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Found %d classes:\n\n", len(resp.Classes))
	for _, class := range resp.Classes {
		printClass(class)
	}
	return nil
}

func runGetClass(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetClass(ctx, &arcanumv1alpha1.GetClassRequest{ClassID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get class: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}
	printClass(resp.Class)
	return nil
}

func printClass(class *arcanumv1alpha1.Class) {
	fmt.Printf("%s (ID: %s)\n", class.DisplayName, class.ID)
	if class.Description != "" {
		fmt.Printf("   Description: %s\n", class.Description)
	}
	fmt.Printf("   Hit Die: %s\n", class.HitDie)
	fmt.Printf("   Saving Throws: %s\n", strings.Join(class.SavingThrows, ", "))
	if class.SkillChoices > 0 {
		fmt.Printf("   Skills: Choose %d from %s\n", class.SkillChoices, strings.Join(class.SkillOptions, ", "))
	}
	fmt.Printf("   Caster: %s\n", class.CasterType)
	for _, sc := range class.Subclasses {
		fmt.Printf("   - %s (%s, level %d)\n", sc.DisplayName, sc.ID, sc.MinLevel)
	}
	fmt.Println()
}

func runListSpells(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	req := &arcanumv1alpha1.ListSpellsRequest{ClassID: classFilter}
	if cmd.Flags().Changed("level") {
		req.Level = &spellLevel
	}

	resp, err := client.ListSpells(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list spells: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Found %d spells:\n\n", len(resp.Spells))
	for _, spell := range resp.Spells {
		fmt.Printf("%s (ID: %s) level %d %s\n", spell.DisplayName, spell.ID, spell.Level, spell.School)
		fmt.Printf("   %s, %s, %s\n", spell.CastingTime, spell.Range, spell.Duration)
		if spell.Concentration {
			fmt.Printf("   Concentration\n")
		}
	}
	return nil
}

func runSpellSlots(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCatalogClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetSpellSlots(ctx, &arcanumv1alpha1.GetSpellSlotsRequest{
		ClassID: args[0],
		Level:   slotsLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to get spell slots: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("%s level %d (%s caster)\n", resp.ClassID, resp.Level, resp.CasterType)
	s := resp.SpellSlots
	for i, n := range []int32{s.Level1, s.Level2, s.Level3, s.Level4, s.Level5, s.Level6, s.Level7, s.Level8, s.Level9} {
		if n > 0 {
			fmt.Printf("   Level %d: %d\n", i+1, n)
		}
	}
	return nil
}
