// Package domain contains the core entities of the ordering service:
// users, menu categories, food items, and the asset references that tie
// uploaded images to them. Entities validate themselves; persistence and
// transport concerns live elsewhere.
package domain
