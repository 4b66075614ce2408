// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package menu describes the interactive navigation of the shop client as
// data: the states, the numbered choices of every menu, the transition each
// choice triggers and the input fields each action asks for.
//
// Both front-ends (the line console and the terminal UI) drive themselves
// from this table, so they always offer the same menus with the same
// numbering.
package menu

// State is a node of the navigation state machine.
type State int

const (
	StateUnauthenticated State = iota
	StateMain
	StateUsers
	StateProducts
	StateExit
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateMain:
		return "main"
	case StateUsers:
		return "users"
	case StateProducts:
		return "products"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Action is the operation bound to a menu choice.
type Action int

const (
	// ActionNone only moves to another menu.
	ActionNone Action = iota
	ActionExit
	ActionBack
	ActionCreateUser
	ActionListUsers
	ActionListProducts
	ActionGetProduct
	ActionAddProduct
	ActionUpdateProduct
	ActionDeleteProduct
	ActionTopExpensive
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionExit:
		return "exit"
	case ActionBack:
		return "back"
	case ActionCreateUser:
		return "create_user"
	case ActionListUsers:
		return "list_users"
	case ActionListProducts:
		return "list_products"
	case ActionGetProduct:
		return "get_product"
	case ActionAddProduct:
		return "add_product"
	case ActionUpdateProduct:
		return "update_product"
	case ActionDeleteProduct:
		return "delete_product"
	case ActionTopExpensive:
		return "top_expensive_products"
	default:
		return "unknown"
	}
}

// NeedsBackend reports whether the action sends a request.
func (a Action) NeedsBackend() bool {
	return a >= ActionCreateUser
}
