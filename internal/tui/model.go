package tui

import (
	"context"
	"math/rand"

	"github.com/akyairhashvil/greenbite/internal/calculator"
	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/database"
	"github.com/akyairhashvil/greenbite/internal/models"
	"github.com/akyairhashvil/greenbite/internal/recipes"
	"github.com/akyairhashvil/greenbite/internal/util"
	"github.com/akyairhashvil/greenbite/internal/wellness"
	"github.com/akyairhashvil/greenbite/internal/workout"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configure a MainModel beyond its store.
type Options struct {
	Settings config.Settings
	// Player rings timer expiries. Nil means silent.
	Player wellness.Player
	// Ambience plays the rain/waves loops. Nil means state only.
	Ambience wellness.Player
	// Rand picks the tip of the day. Nil uses the global source.
	Rand *rand.Rand
	// ReportsDir is where exports are written.
	ReportsDir string
}

// Calculator field indexes into MainModel.calcInputs.
const (
	calcAge = iota
	calcHeight
	calcWeight
)

// Contact field indexes into MainModel.contactInputs.
const (
	contactName = iota
	contactEmail
	contactMessage
)

// MainModel is the root bubbletea model. Each section keeps its own state so
// switching tabs never loses a running timer or a half-filled form.
type MainModel struct {
	ctx        context.Context
	store      Store
	cfg        config.Settings
	keys       *HandlerRegistry
	player     wellness.Player
	reportsDir string

	section Section
	editing bool
	field   int
	err     error
	Message string
	width   int
	height  int

	// Home
	slogans    wellness.SloganRotator
	tip        string
	newsletter textinput.Model

	// Recipes
	search       textinput.Model
	category     int
	results      []models.Recipe
	recipeCursor int
	detail       *models.Recipe

	// Calculator
	calcInputs [3]textinput.Model
	gender     calculator.Gender
	activity   int
	calcResult *calculator.Result
	bar        progress.Model

	// Workout
	body       int
	equipment  int
	plan       workout.Plan
	planCursor int
	timer      workout.Timer

	// Mindfulness
	breathing  wellness.Breathing
	meditation wellness.Meditation
	minutes    textinput.Model
	ambience   *wellness.Ambience

	// Contact
	contactInputs [3]textinput.Model
}

func newInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	return ti
}

// NewMainModel builds the UI around store, restoring the last section, theme
// and workout selectors from settings.
func NewMainModel(ctx context.Context, store Store, opts Options) MainModel {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := opts.Settings
	if cfg.Validate() != nil {
		cfg = config.Defaults()
	}

	m := MainModel{
		ctx:        ctx,
		store:      store,
		cfg:        cfg,
		player:     opts.Player,
		reportsDir: opts.ReportsDir,
		tip:        wellness.TipOfTheDay(opts.Rand),
		newsletter: newInput("you@example.com", config.MaxEmailLength, 40),
		search:     newInput("Search recipes (cat:vegan avocado)...", config.MaxSearchLength, 40),
		calcInputs: [3]textinput.Model{
			newInput("Age (years)", 3, 20),
			newInput("Height (cm)", 5, 20),
			newInput("Weight (kg)", 5, 20),
		},
		gender:    calculator.Male,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		timer:     workout.NewTimer(cfg.ExerciseDuration()),
		breathing: wellness.NewBreathing(cfg.BreathPhase()),
		minutes:   newInput("5", 5, 6),
		contactInputs: [3]textinput.Model{
			newInput("Name", config.MaxNameLength, 40),
			newInput("Email", config.MaxEmailLength, 40),
			newInput("Message", config.MaxMessageLength, 60),
		},
	}
	ambience := opts.Ambience
	if !cfg.SoundEnabled() {
		m.player = nil
		ambience = nil
	}
	m.ambience = wellness.NewAmbience(ambience)
	m.bar.Width = config.MacroBarWidth
	m.meditation = wellness.NewMeditation(cfg.MeditationMinutes)
	m.keys = defaultKeys()
	m.results = recipes.All

	SetTheme(cfg.Theme)
	if store == nil {
		return m
	}
	if name, ok := store.GetSetting(ctx, database.SettingTheme); ok {
		SetTheme(name)
	}
	if name, ok := store.GetSetting(ctx, database.SettingLastSection); ok {
		m.section = ParseSection(name)
	}
	if v, ok := store.GetSetting(ctx, database.SettingBodyPart); ok {
		m.body = indexOf(workout.BodyParts(), workout.ParseBodyPart(v))
	}
	if v, ok := store.GetSetting(ctx, database.SettingEquipment); ok {
		m.equipment = indexOf(workout.EquipmentOptions(), workout.ParseEquipment(v))
	}
	count, err := store.CountMeditations(ctx)
	util.LogError("count meditation sessions", err)
	m.meditation.SetSessions(count)
	return m
}

func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return 0
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, sloganTick())
}

// Section reports the visible section.
func (m MainModel) Section() Section { return m.section }

func (m MainModel) bodyPart() models.BodyPart {
	return workout.BodyParts()[m.body]
}

func (m MainModel) equipmentTag() models.Equipment {
	return workout.EquipmentOptions()[m.equipment]
}

func (m MainModel) recipeCategory() models.RecipeCategory {
	return recipes.Categories()[m.category]
}

// inputs returns the text fields of the current section, in focus order.
func (m *MainModel) inputs() []*textinput.Model {
	switch m.section {
	case SectionHome:
		return []*textinput.Model{&m.newsletter}
	case SectionRecipes:
		return []*textinput.Model{&m.search}
	case SectionCalculator:
		return []*textinput.Model{&m.calcInputs[calcAge], &m.calcInputs[calcHeight], &m.calcInputs[calcWeight]}
	case SectionMindfulness:
		return []*textinput.Model{&m.minutes}
	case SectionContact:
		return []*textinput.Model{&m.contactInputs[contactName], &m.contactInputs[contactEmail], &m.contactInputs[contactMessage]}
	}
	return nil
}

// startEditing focuses the field-th input of the current section.
func (m MainModel) startEditing(field int) (MainModel, tea.Cmd) {
	fields := m.inputs()
	if len(fields) == 0 {
		return m, nil
	}
	m.blurAll()
	m.editing = true
	m.field = util.Clamp(field, 0, len(fields)-1)
	return m, m.inputs()[m.field].Focus()
}

func (m *MainModel) stopEditing() {
	m.blurAll()
	m.editing = false
	m.field = 0
}

func (m *MainModel) blurAll() {
	for _, in := range m.inputs() {
		in.Blur()
	}
}
