package data

import _ "embed"

//go:embed app.js
var AppJS string
