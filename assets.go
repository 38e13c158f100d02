package main

import (
	"embed"
	"html/template"

	"dockside/pkg/store"
)

//go:embed assets/*
var httpAssets embed.FS

type StatusPageModel struct {
	store.Snapshot
	Running int
	Stopped int
}

var statusTemplate = template.Must(template.ParseFS(httpAssets, "assets/status.html"))
