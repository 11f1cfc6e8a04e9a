package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	arcanumv1alpha1 "github.com/KirkDiggler/arcanum-api/internal/api/arcanum/v1alpha1"
)

var (
	createReq     arcanumv1alpha1.CreateCharacterRequest
	skills        string
	scores        []int
	stateHealth   int32
	stateMaxHP    int32
	stateGold     int32
	concentrating string
)

var createCharacterCmd = &cobra.Command{
	Use:   "create-character",
	Short: "Create a character",
	Long: `Create a character. Ability scores are given in the order
strength, dexterity, constitution, intelligence, wisdom, charisma; missing ones default to 10.`,
	RunE: runCreateCharacter,
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Show a character sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetCharacter,
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List your characters",
	RunE:  runListCharacters,
}

var updateStateCmd = &cobra.Command{
	Use:   "update-state [character-id]",
	Short: "Update health, gold or concentration",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdateState,
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete-character [character-id]",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteCharacter,
}

func init() {
	f := createCharacterCmd.Flags()
	f.StringVar(&createReq.NameEs, "name", "", "Spanish name")
	f.StringVar(&createReq.NameEn, "name-en", "", "English name")
	f.StringVar(&createReq.RaceID, "race", "", "Race id")
	f.StringVar(&createReq.SubraceID, "subrace", "", "Subrace id")
	f.StringVar(&createReq.ClassID, "class", "", "Class id")
	f.StringVar(&createReq.SubclassID, "subclass", "", "Subclass id")
	f.StringVar(&createReq.BackgroundID, "background", "", "Background id")
	f.StringVar(&createReq.AlignmentID, "alignment", "", "Alignment id")
	f.StringVar(&skills, "skills", "", "Comma separated skill keys")
	f.IntSliceVar(&scores, "scores", nil, "Ability scores, e.g. 15,14,13,12,10,8")

	u := updateStateCmd.Flags()
	u.Int32Var(&stateHealth, "health", 0, "Current health")
	u.Int32Var(&stateMaxHP, "max-health", 0, "Maximum health")
	u.Int32Var(&stateGold, "gold", 0, "Gold")
	u.StringVar(&concentrating, "concentrating", "", "Spell being concentrated on; empty clears it")
}

func runCreateCharacter(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	req := createReq
	if skills != "" {
		req.SkillProficiencies = strings.Split(skills, ",")
	}
	slots := []*arcanumv1alpha1.LooseInt{
		&req.AbilityScores.Strength,
		&req.AbilityScores.Dexterity,
		&req.AbilityScores.Constitution,
		&req.AbilityScores.Intelligence,
		&req.AbilityScores.Wisdom,
		&req.AbilityScores.Charisma,
	}
	for i, score := range scores {
		if i >= len(slots) {
			break
		}
		*slots[i] = arcanumv1alpha1.Int(int32(score))
	}

	resp, err := client.CreateCharacter(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	for _, w := range resp.Warnings {
		fmt.Printf("warning: %s: %s\n", w.Field, w.Message)
	}
	if jsonOutput {
		return printJSON(resp)
	}
	printSheet(resp.Character)
	return nil
}

func runGetCharacter(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetCharacterSheet(ctx, &arcanumv1alpha1.GetCharacterSheetRequest{CharacterID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}
	printSheet(resp.Character)
	return nil
}

func runListCharacters(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListCharacters(ctx, &arcanumv1alpha1.ListCharactersRequest{})
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Printf("Found %d characters:\n\n", len(resp.Characters))
	for _, c := range resp.Characters {
		fmt.Printf("%s (ID: %s) level %d %s %s\n", c.DisplayName, c.ID, c.Level, refName(c.Race), refName(c.Class))
	}
	return nil
}

func runUpdateState(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	patch := &arcanumv1alpha1.GameStatePatch{}
	flags := cmd.Flags()
	if flags.Changed("health") {
		patch.CurrentHealth = &stateHealth
	}
	if flags.Changed("max-health") {
		patch.MaximumHealth = &stateMaxHP
	}
	if flags.Changed("gold") {
		patch.CurrentGold = &stateGold
	}
	if flags.Changed("concentrating") {
		patch.ConcentratingOn = &concentrating
	}

	resp, err := client.UpdateGameState(ctx, &arcanumv1alpha1.UpdateGameStateRequest{
		CharacterID: args[0],
		Patch:       patch,
	})
	if err != nil {
		return fmt.Errorf("failed to update game state: %w", err)
	}
	return printJSON(resp.GameState)
}

func runDeleteCharacter(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	if _, err := client.DeleteCharacter(ctx, &arcanumv1alpha1.DeleteCharacterRequest{CharacterID: args[0]}); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func printSheet(c *arcanumv1alpha1.CharacterSheet) {
	fmt.Printf("%s (ID: %s)\n", c.DisplayName, c.ID)
	fmt.Printf("   %s %s, level %d (%d xp)\n", refName(c.Race), refName(c.Class), c.Level, c.Experience)

	a, m := c.Abilities, c.AbilityModifiers
	fmt.Printf("   STR %d (%+d)  DEX %d (%+d)  CON %d (%+d)\n",
		a.Strength, m.Strength, a.Dexterity, m.Dexterity, a.Constitution, m.Constitution)
	fmt.Printf("   INT %d (%+d)  WIS %d (%+d)  CHA %d (%+d)\n",
		a.Intelligence, m.Intelligence, a.Wisdom, m.Wisdom, a.Charisma, m.Charisma)

	fmt.Printf("   HP %d/%d  AC %d  Initiative %+d  Speed %d\n",
		c.Health.Current, c.Health.Maximum, c.ArmorClass, c.Initiative, c.Speed)
	fmt.Printf("   Proficiency %+d  Passive Perception %d  Hit Dice %s x%d\n",
		c.ProficiencyBonus, c.PassivePerception, c.HitDice, c.HitDiceTotal)

	var proficient []string
	for _, s := range c.Skills {
		if s.Proficient {
			proficient = append(proficient, fmt.Sprintf("%s %+d", s.DisplayName, s.Modifier))
		}
	}
	if len(proficient) > 0 {
		fmt.Printf("   Skills: %s\n", strings.Join(proficient, ", "))
	}
	if c.ConcentratingOn != nil {
		fmt.Printf("   Concentrating on %s\n", *c.ConcentratingOn)
	}
	if len(c.ActiveConditions) > 0 {
		fmt.Printf("   Conditions: %s\n", strings.Join(c.ActiveConditions, ", "))
	}
}

func refName(ref *arcanumv1alpha1.LocalizedRef) string {
	if ref == nil {
		return "?"
	}
	return ref.DisplayName
}
