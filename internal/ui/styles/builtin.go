// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// builtin.go - the theme definitions that ship with the application.

package styles

// Default theme name used when neither flags nor config choose one.
const DefaultTheme = "zt_dark"

// BuiltinRegistry returns a registry populated with the shipped themes.
// Registration order here is the order used in listings and in the
// suggestions shown for incomplete themes.
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register("zt_dark", ztDark)
	r.Register("gruvbox_dark", gruvboxDark)
	r.Register("zt_light", ztLight)
	r.Register("zt_blue", ztBlue)
	return r
}

// =============================================================================
// ZT DARK (default)
// =============================================================================

var ztDark = ThemeSpec{
	"default":      {Foreground: "#FFFFFF", Background: "#1C1C1C"},
	"selected":     {Foreground: "#FFFFFF", Background: "#005F87"},
	"msg_selected": {Foreground: "#FFFFFF", Background: "#005F87"},
	"header":       {Foreground: "#00AFFF", Background: "#1C1C1C"},
	"general_bar":  {Foreground: "#FFFFFF", Background: "#1C1C1C"},
	"name":         {Foreground: "#FFD700", Background: "#1C1C1C"},
	"unread":       {Foreground: "#AF87FF", Background: "#1C1C1C"},
	"user_active":  {Foreground: "#00FF00", Background: "#1C1C1C"},
	"user_idle":    {Foreground: "#FFFF00", Background: "#1C1C1C"},
	"user_offline": {Foreground: "#FFFFFF", Background: "#1C1C1C"},
	"title":        {Foreground: "#FFFFFF", Background: "#1C1C1C"},
	"time":         {Foreground: "#87AFFF", Background: "#1C1C1C"},
	"bar":          {Foreground: "#FFFFFF", Background: "#4E4E4E"},
	"msg_mention":  {Foreground: "#FF0000", Background: "#1C1C1C"},
	"msg_link":     {Foreground: "#00AFFF", Background: "#1C1C1C"},
	"msg_quote":    {Foreground: "#FFD700", Background: "#1C1C1C"},
	"msg_code":     {Foreground: "#1C1C1C", Background: "#FFFFFF"},
	"msg_bold":     {Foreground: "#FFFFFF", Background: "#1C1C1C"},
	"msg_time":     {Foreground: "#1C1C1C", Background: "#87AFFF"},
	"footer":       {Foreground: "#1C1C1C", Background: "#87AFAF"},
	"starred":      {Foreground: "#FF0000", Background: "#1C1C1C"},
	"unread_count": {Foreground: "#FFD700", Background: "#1C1C1C"},
	"area:error":   {Foreground: "#FFFFFF", Background: "#870000"},
	"search_error": {Foreground: "#FF0000", Background: "#1C1C1C"},
}

// =============================================================================
// GRUVBOX DARK
// =============================================================================

var gruvboxDark = ThemeSpec{
	"default":      {Foreground: "#EBDBB2", Background: "#282828"},
	"selected":     {Foreground: "#282828", Background: "#83A598"},
	"msg_selected": {Foreground: "#282828", Background: "#83A598"},
	"header":       {Foreground: "#83A598", Background: "#282828"},
	"general_bar":  {Foreground: "#EBDBB2", Background: "#282828"},
	"name":         {Foreground: "#FABD2F", Background: "#282828"},
	"unread":       {Foreground: "#D3869B", Background: "#282828"},
	"user_active":  {Foreground: "#B8BB26", Background: "#282828"},
	"user_idle":    {Foreground: "#FABD2F", Background: "#282828"},
	"user_offline": {Foreground: "#EBDBB2", Background: "#282828"},
	"title":        {Foreground: "#EBDBB2", Background: "#282828"},
	"time":         {Foreground: "#83A598", Background: "#282828"},
	"bar":          {Foreground: "#EBDBB2", Background: "#504945"},
	"msg_mention":  {Foreground: "#FB4934", Background: "#282828"},
	"msg_link":     {Foreground: "#83A598", Background: "#282828"},
	"msg_quote":    {Foreground: "#FABD2F", Background: "#282828"},
	"msg_code":     {Foreground: "#282828", Background: "#EBDBB2"},
	"msg_bold":     {Foreground: "#EBDBB2", Background: "#282828"},
	"msg_time":     {Foreground: "#282828", Background: "#83A598"},
	"footer":       {Foreground: "#282828", Background: "#8EC07C"},
	"starred":      {Foreground: "#FB4934", Background: "#282828"},
	"unread_count": {Foreground: "#FABD2F", Background: "#282828"},
	"area:error":   {Foreground: "#EBDBB2", Background: "#CC241D"},
	"search_error": {Foreground: "#FB4934", Background: "#282828"},
}

// =============================================================================
// ZT LIGHT
// =============================================================================

var ztLight = ThemeSpec{
	"default":      {Foreground: "#000000", Background: "#FFFFFF"},
	"selected":     {Foreground: "#000000", Background: "#AFD7FF"},
	"msg_selected": {Foreground: "#000000", Background: "#AFD7FF"},
	"header":       {Foreground: "#005F87", Background: "#FFFFFF"},
	"general_bar":  {Foreground: "#000000", Background: "#FFFFFF"},
	"name":         {Foreground: "#875F00", Background: "#FFFFFF"},
	"unread":       {Foreground: "#5F00AF", Background: "#FFFFFF"},
	"user_active":  {Foreground: "#008700", Background: "#FFFFFF"},
	"user_idle":    {Foreground: "#AF8700", Background: "#FFFFFF"},
	"user_offline": {Foreground: "#000000", Background: "#FFFFFF"},
	"title":        {Foreground: "#000000", Background: "#FFFFFF"},
	"time":         {Foreground: "#005FAF", Background: "#FFFFFF"},
	"bar":          {Foreground: "#000000", Background: "#D0D0D0"},
	"msg_mention":  {Foreground: "#D70000", Background: "#FFFFFF"},
	"msg_link":     {Foreground: "#005FAF", Background: "#FFFFFF"},
	"msg_quote":    {Foreground: "#875F00", Background: "#FFFFFF"},
	"msg_code":     {Foreground: "#FFFFFF", Background: "#000000"},
	"msg_bold":     {Foreground: "#000000", Background: "#FFFFFF"},
	"msg_time":     {Foreground: "#FFFFFF", Background: "#005FAF"},
	"footer":       {Foreground: "#FFFFFF", Background: "#005F87"},
	"starred":      {Foreground: "#D70000", Background: "#FFFFFF"},
	"unread_count": {Foreground: "#875F00", Background: "#FFFFFF"},
	"area:error":   {Foreground: "#FFFFFF", Background: "#D70000"},
	"search_error": {Foreground: "#D70000", Background: "#FFFFFF"},
}

// =============================================================================
// ZT BLUE
// =============================================================================

var ztBlue = ThemeSpec{
	"default":      {Foreground: "#FFFFFF", Background: "#00005F"},
	"selected":     {Foreground: "#00005F", Background: "#87D7FF"},
	"msg_selected": {Foreground: "#00005F", Background: "#87D7FF"},
	"header":       {Foreground: "#87D7FF", Background: "#00005F"},
	"general_bar":  {Foreground: "#FFFFFF", Background: "#00005F"},
	"name":         {Foreground: "#FFD700", Background: "#00005F"},
	"unread":       {Foreground: "#D7AFFF", Background: "#00005F"},
	"user_active":  {Foreground: "#5FFF5F", Background: "#00005F"},
	"user_idle":    {Foreground: "#FFFF87", Background: "#00005F"},
	"user_offline": {Foreground: "#FFFFFF", Background: "#00005F"},
	"title":        {Foreground: "#FFFFFF", Background: "#00005F"},
	"time":         {Foreground: "#87AFFF", Background: "#00005F"},
	"bar":          {Foreground: "#FFFFFF", Background: "#0000AF"},
	"msg_mention":  {Foreground: "#FF5F5F", Background: "#00005F"},
	"msg_link":     {Foreground: "#87D7FF", Background: "#00005F"},
	"msg_quote":    {Foreground: "#FFD700", Background: "#00005F"},
	"msg_code":     {Foreground: "#00005F", Background: "#FFFFFF"},
	"msg_bold":     {Foreground: "#FFFFFF", Background: "#00005F"},
	"msg_time":     {Foreground: "#00005F", Background: "#87AFFF"},
	"footer":       {Foreground: "#00005F", Background: "#87D7FF"},
	"starred":      {Foreground: "#FF5F5F", Background: "#00005F"},
	"unread_count": {Foreground: "#FFD700", Background: "#00005F"},
	"area:error":   {Foreground: "#FFFFFF", Background: "#870000"},
	"search_error": {Foreground: "#FF5F5F", Background: "#00005F"},
}
