// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package menu

import (
	"strconv"
	"strings"
)

// Item is one numbered line of a menu.
type Item struct {
	Choice int
	Label  string
	Action Action
	Next   State
}

// Menu is the set of choices offered in one state.
type Menu struct {
	State State
	Title string
	Items []Item
	// Invalid is printed when the input matches no item.
	Invalid string
}

var menus = map[State]Menu{
	StateMain: {
		State: StateMain,
		Title: "Main Menu:",
		Items: []Item{
			{Choice: 1, Label: "Manage Users", Action: ActionNone, Next: StateUsers},
			{Choice: 2, Label: "Manage Products", Action: ActionNone, Next: StateProducts},
			{Choice: 0, Label: "Exit", Action: ActionExit, Next: StateExit},
		},
		Invalid: "Invalid choice! Please try again.",
	},
	StateUsers: {
		State: StateUsers,
		Title: "=== Manage Users ===",
		Items: []Item{
			{Choice: 1, Label: "Create User", Action: ActionCreateUser, Next: StateMain},
			{Choice: 2, Label: "Display All Users", Action: ActionListUsers, Next: StateMain},
			{Choice: 0, Label: "Back to Main Menu", Action: ActionBack, Next: StateMain},
		},
		Invalid: "Invalid choice!",
	},
	StateProducts: {
		State: StateProducts,
		Title: "=== Manage Products ===",
		Items: []Item{
			{Choice: 1, Label: "Display All Products", Action: ActionListProducts, Next: StateMain},
			{Choice: 2, Label: "Fetch Product by ID", Action: ActionGetProduct, Next: StateMain},
			{Choice: 3, Label: "Add Product", Action: ActionAddProduct, Next: StateMain},
			{Choice: 4, Label: "Update Product", Action: ActionUpdateProduct, Next: StateMain},
			{Choice: 5, Label: "Delete Product", Action: ActionDeleteProduct, Next: StateMain},
			{Choice: 6, Label: "View 3 Most Expensive Products", Action: ActionTopExpensive, Next: StateMain},
			{Choice: 0, Label: "Back to Main Menu", Action: ActionBack, Next: StateMain},
		},
		Invalid: "Invalid choice!",
	},
}

// Lookup returns the menu shown in state. Unauthenticated and Exit have no
// menu.
func Lookup(state State) (Menu, bool) {
	m, ok := menus[state]
	return m, ok
}

// Selection is the outcome of parsing a choice. When Valid is false the
// state machine stays where it is and Action is ActionNone.
type Selection struct {
	Valid  bool
	Action Action
	Next   State
	// Label is the chosen item's label.
	Label string
}

// Select resolves the raw input typed at the menu of state. Out-of-range
// numbers, non-numeric text and empty lines give an invalid selection.
func Select(state State, input string) Selection {
	invalid := Selection{Valid: false, Action: ActionNone, Next: state}

	m, ok := menus[state]
	if !ok {
		return invalid
	}

	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return invalid
	}

	item, ok := m.Item(choice)
	if !ok {
		return invalid
	}
	return Selection{Valid: true, Action: item.Action, Next: item.Next, Label: item.Label}
}

// Item returns the item with the given choice number.
func (m Menu) Item(choice int) (Item, bool) {
	for _, item := range m.Items {
		if item.Choice == choice {
			return item, true
		}
	}
	return Item{}, false
}
