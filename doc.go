// Package willowui is a small retained-mode UI toolkit for [Ebitengine]
// built around a queued toast notification system.
//
// The core is [NotificationCenter], a pure state machine: messages are
// queued with [NotificationCenter.Enqueue] and shown one at a time for
// [NotificationDisplaySecs], sliding in from the right edge, with a short
// pause between them. It has no ebiten dependency and can be driven by any
// frame loop through [NotificationCenter.Tick].
//
// Everything else presents that queue and feeds it: a scene graph of
// [Node] values, mouse and keyboard input, wrapped text, tweens (via
// [gween]) and a handful of widgets ([Panel], [Button], [ExpandList],
// [RichText], [TextInput], [Toast]).
//
// # Quick start
//
//	scene := willowui.NewScene()
//	th := willowui.DefaultTheme()
//	center := willowui.NewNotificationCenter()
//	willowui.NewToast(scene, center, willowui.DefaultFont(14), th)
//
//	btn := willowui.NewButton("Notify", willowui.DefaultFont(14), th)
//	btn.OnClick = func() { center.Enqueue("Hello") }
//	win := willowui.NewPanel("Demo", 40, 40, 200, willowui.BoldFont(14), th)
//	win.Add(btn)
//	scene.Root().AddChild(win.Node())
//
//	willowui.Run(scene, willowui.RunConfig{Title: "Demo", Width: 800, Height: 600})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly. Tests drive a scene without a
// window through [Scene.Step] and the Inject* methods.
//
// # Scene graph
//
// Nodes form a tree rooted at [Scene.Root]. Children inherit their parent's
// transform and alpha. Create nodes with [NewContainer], [NewRect],
// [NewImage] and [NewText]. Draw order follows the tree, then [Node.ZIndex]
// among siblings, then [Node.RenderLayer] across the whole scene.
//
// # Scripts
//
// A [Script] replays clicks, drags and screenshots from a TOML file, which
// makes unattended demo runs and captures repeatable.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package willowui
