// Package showcase assembles the demo windows: an expansion list, a
// notification producer and an interactive paragraph, all feeding one
// notification toast.
package showcase

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willowui"
	"github.com/phanxgames/willowui/internal/config"
)

// Window placement and sizes.
const (
	ListX, ListY         = 50.0, 50.0
	ProducerX, ProducerY = 400.0, 50.0
	TextX, TextY         = 400.0, 250.0

	listWidth     = 220.0
	producerWidth = 300.0
	textWidth     = 200.0
	producerRows  = 3
	gapSmall      = 5.0
	gapLarge      = 10.0
)

const linkMessage = "This is a notification from the interactive text"

// Fonts used by the showcase windows.
type Fonts struct {
	Body  willowui.Font // labels, buttons, paragraph (14 px)
	Title willowui.Font // panel titles
	Item  willowui.Font // expansion list rows (16 px mono)
	Icon  willowui.Font // toast marker
}

// DefaultFonts returns the Go font family at the showcase sizes.
func DefaultFonts() Fonts {
	return Fonts{
		Body:  willowui.DefaultFont(14),
		Title: willowui.BoldFont(14),
		Item:  willowui.MonoFont(16),
		Icon:  willowui.BoldFont(36),
	}
}

// Food is an expansion list entry with its icon already loaded.
type Food struct {
	Name string
	Icon *ebiten.Image
}

// placeholderColors tint generated icons, cycling per food.
var placeholderColors = []willowui.Color{
	willowui.Hex(0xf38ba8),
	willowui.Hex(0xfab387),
	willowui.Hex(0xf9e2af),
	willowui.Hex(0xa6e3a1),
	willowui.Hex(0x94e2d5),
	willowui.Hex(0x89b4fa),
	willowui.Hex(0xcba6f7),
	willowui.Hex(0xf5c2e7),
}

// LoadFoods resolves each configured food's icon from assets, falling back
// to a lettered placeholder. assets may be nil.
func LoadFoods(foods []config.FoodConfig, assets fs.FS, logger *slog.Logger) []Food {
	out := make([]Food, len(foods))
	for i, f := range foods {
		letter := "?"
		if r := []rune(strings.TrimSpace(f.Name)); len(r) > 0 {
			letter = strings.ToUpper(string(r[0]))
		}
		c := placeholderColors[i%len(placeholderColors)]
		out[i] = Food{Name: f.Name, Icon: willowui.IconOrPlaceholder(assets, f.Icon, c, letter, logger)}
	}
	return out
}

// Options configures Build.
type Options struct {
	Theme        *willowui.Theme
	Fonts        Fonts
	Foods        []Food
	ProducerText string
}

// App holds the assembled widgets.
type App struct {
	Center *willowui.NotificationCenter
	Toast  *willowui.Toast

	ListPanel     *willowui.Panel
	ProducerPanel *willowui.Panel
	TextPanel     *willowui.Panel

	List     *willowui.ExpandList
	Eat      *willowui.Button
	Producer *willowui.TextInput
	Queue    *willowui.Button
	Para     *willowui.RichText

	scene *willowui.Scene
	theme *willowui.Theme
}

// Build adds the showcase windows and toast to scene. Every widget that
// produces notifications enqueues into center.
func Build(scene *willowui.Scene, center *willowui.NotificationCenter, opts Options) *App {
	th := opts.Theme
	if th == nil {
		th = willowui.DefaultTheme()
	}
	fonts := opts.Fonts
	a := &App{Center: center, scene: scene, theme: th}

	a.buildList(fonts, opts.Foods)
	a.buildProducer(fonts, opts.ProducerText)
	a.buildText(fonts)

	a.Toast = willowui.NewToast(scene, center, fonts.Body, th)
	if fonts.Icon != nil {
		a.Toast.SetIconFont(fonts.Icon)
	}

	scene.ClearColor = th.Background
	return a
}

func (a *App) buildList(fonts Fonts, foods []Food) {
	items := make([]willowui.ExpandItem, len(foods))
	for i, f := range foods {
		items[i] = willowui.ExpandItem{Name: f.Name, Icon: f.Icon}
	}

	p := willowui.NewPanel("Expansion list", ListX, ListY, listWidth+16, fonts.Title, a.theme)
	a.List = willowui.NewExpandList(items, p.ContentWidth(), fonts.Body, fonts.Item, a.theme)
	a.Eat = willowui.NewButton("", fonts.Body, a.theme)
	a.syncEatLabel()

	a.List.OnSelect = func(int, willowui.ExpandItem) { a.syncEatLabel() }
	a.Eat.OnClick = func() {
		if it, ok := a.List.SelectedItem(); ok {
			a.Center.Enqueue(fmt.Sprintf("Eating %s", it.Name))
		}
	}

	p.Add(a.List, willowui.NewSpacer(gapLarge), a.Eat)
	a.ListPanel = p
	a.scene.Root().AddChild(p.Node())
}

func (a *App) syncEatLabel() {
	if it, ok := a.List.SelectedItem(); ok {
		a.Eat.SetText("Eat " + it.Name)
	}
}

func (a *App) buildProducer(fonts Fonts, text string) {
	p := willowui.NewPanel("Notification producer", ProducerX, ProducerY, producerWidth+16, fonts.Title, a.theme)
	a.Producer = willowui.NewTextInput(a.scene, text, p.ContentWidth(), producerRows, fonts.Body, a.theme)
	a.Queue = willowui.NewButton("Queue notification", fonts.Body, a.theme)
	a.Queue.OnClick = func() { a.Center.Enqueue(a.Producer.Text()) }

	p.Add(
		willowui.NewSpacer(gapSmall),
		willowui.NewLabel("Notification text:", p.ContentWidth(), fonts.Body, a.theme),
		a.Producer,
		willowui.NewSpacer(gapSmall),
		a.Queue,
	)
	a.ProducerPanel = p
	a.scene.Root().AddChild(p.Node())
}

func (a *App) buildText(fonts Fonts) {
	p := willowui.NewPanel("Interactive Text", TextX, TextY, textWidth+16, fonts.Title, a.theme)
	a.Para = willowui.NewRichText([]willowui.Span{
		willowui.PlainSpan("This is an example of a paragraph of text. You can"),
		willowui.LinkSpan("click this link", func() { a.Center.Enqueue(linkMessage) }),
		willowui.PlainSpan("to display a notification"),
	}, p.ContentWidth(), fonts.Body, a.theme)

	p.Add(a.Para)
	a.TextPanel = p
	a.scene.Root().AddChild(p.Node())
}

// ApplyTheme repaints every window and the toast.
func (a *App) ApplyTheme(th *willowui.Theme) {
	a.theme = th
	a.scene.ClearColor = th.Background
	a.ListPanel.ApplyTheme(th)
	a.ProducerPanel.ApplyTheme(th)
	a.TextPanel.ApplyTheme(th)
	a.Toast.ApplyTheme(th)
}

// Theme returns the active theme.
func (a *App) Theme() *willowui.Theme {
	return a.theme
}
