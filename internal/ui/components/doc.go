// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the diffwin TUI.

Each component follows the same shape: a constructor taking the shared
Theme, a SetSize method, an Update method consuming tea.KeyMsg, and a
View method producing the rendered string. Components never talk to
each other directly; outcomes surface as messages (MenuSelectMsg,
FilePickedMsg, DiffCloseMsg) that the root model routes.

# Components

  - Menu: scrollable list with a decaying error line, backing both the
    main menu and the file picker
  - FilePicker: filesystem navigation built on Menu
  - DiffView: the side-by-side split with locked/independent scrolling,
    a movable separator, and matched-line highlighting
  - StatusBar: the one-row summary under the diff view
  - Help: the command reference
*/
package components
