package extract

import (
	"path/filepath"
	"strings"
)

// PlainText is the generic language returned when nothing more specific
// can be determined.
const PlainText = "plaintext"

// languageExtensions maps language names to their canonical extension.
// Order matters: the reverse (extension → language) lookup is built from
// this list and the first language naming an extension wins, so canonical
// spellings come before aliases.
var languageExtensions = []struct {
	Language  string
	Extension string
}{
	{"typescript", ".ts"},
	{"tsx", ".tsx"},
	{"javascript", ".js"},
	{"js", ".js"},
	{"jsx", ".jsx"},
	{"python", ".py"},
	{"go", ".go"},
	{"golang", ".go"},
	{"rust", ".rs"},
	{"java", ".java"},
	{"c", ".c"},
	{"cpp", ".cpp"},
	{"c++", ".cpp"},
	{"csharp", ".cs"},
	{"ruby", ".rb"},
	{"php", ".php"},
	{"html", ".html"},
	{"css", ".css"},
	{"scss", ".scss"},
	{"json", ".json"},
	{"yaml", ".yaml"},
	{"yml", ".yml"},
	{"toml", ".toml"},
	{"markdown", ".md"},
	{"shell", ".sh"},
	{"bash", ".sh"},
	{"sql", ".sql"},
	{"swift", ".swift"},
	{"kotlin", ".kt"},
}

var extensionToLanguage = buildReverse()

func buildReverse() map[string]string {
	m := make(map[string]string, len(languageExtensions))
	for _, e := range languageExtensions {
		if _, seen := m[e.Extension]; !seen {
			m[e.Extension] = e.Language
		}
	}
	return m
}

// LanguageByPath returns the language for a file path based on its
// extension, or PlainText when the extension is unmapped.
func LanguageByPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extensionToLanguage[ext]; ok {
		return lang
	}
	return PlainText
}

// contentSignatures is a short ordered list of characteristic substrings
// used to guess a language from raw content. Best-effort and intentionally
// coarse: the first match wins, and most content falls through to
// PlainText. Only used when no explicit language hint is available.
var contentSignatures = []struct {
	Marker   string
	Language string
}{
	{"<!DOCTYPE html", "html"},
	{"<html", "html"},
	{"#!/bin/bash", "bash"},
	{"package main", "go"},
	{"fn main(", "rust"},
	{"def ", "python"},
	{"import React", "javascript"},
	{"function ", "javascript"},
	{"#include", "c"},
	{"SELECT ", "sql"},
}

// SniffLanguage guesses the language of content by scanning for
// characteristic substrings. Returns PlainText when nothing matches.
func SniffLanguage(content string) string {
	for _, sig := range contentSignatures {
		if strings.Contains(content, sig.Marker) {
			return sig.Language
		}
	}
	return PlainText
}
