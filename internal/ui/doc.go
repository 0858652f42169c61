// Package ui is the terminal rendition of the portfolio page, built on
// Bubble Tea.
//
// Core pieces:
//   - View: a screen with its own model, update, view (Elm-style)
//   - AppModel: root model; owns the theme, the dialogs and the frame clock
//   - PortfolioView: navbar, avatar, copy, buttons and social links
//   - FormDialog: a modal.Controller plus a submit.Pipeline rendered as a form
//   - FocusRing: tab order inside a dialog
//   - KeybindRegistry: page-level keys, filtered by AppMode
//
// Every animation advances on motion.FrameMsg; Update never blocks.
package ui
