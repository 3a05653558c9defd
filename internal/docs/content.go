package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with carve",
		Content: topicQuickstart,
	},
	{
		Name:    "syntax",
		Title:   "Path Declaration Syntax",
		Summary: "How transcripts declare where code blocks belong",
		Content: topicSyntax,
	},
	{
		Name:    "artifacts",
		Title:   "Artifact Spans",
		Summary: "Extraction from tagged artifact markup",
		Content: topicArtifacts,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Config file schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "watch",
		Title:   "Watch Mode",
		Summary: "Re-extracting whenever the transcript changes",
		Content: topicWatch,
	},
}

const topicQuickstart = `Quick Start
===========

1. Save an assistant conversation to a file, e.g. transcript.md.

2. Extract every path-annotated code block into real files:

    carve extract transcript.md --out ./generated

3. Keep extracting while you iterate on the conversation:

    carve watch transcript.md --out ./generated

4. Inspect what the last run did:

    carve report

CLI Flags
---------

  carve extract <file>                 Extract once
  carve extract <file> --out DIR       Output directory (default from config)
  carve extract <file> --force         Overwrite existing files without asking
  carve extract <file> --skip-existing Never touch existing files
  carve watch <file>                   Re-extract on every change
  carve report                         Show the last run's report
  carve init                           Write an example .carve.yaml
  carve docs                           List documentation topics

Existing files
--------------

By default carve asks once per run before overwriting anything it finds
already on disk. Use --force or --skip-existing (or the on-existing config
field) to decide ahead of time.
`

const topicSyntax = `Path Declaration Syntax
=======================

carve scans the transcript line by line. A comment line declaring a
relative path binds the fenced code blocks that follow it to that path.
Three forms are recognized, tried in order:

1. Inline, with an optional description after a colon:

    // src/app/main.ts
    // src/app/main.ts: application entry point

2. A @file directive:

    // @file src/app/main.ts

3. A filepath directive:

    // filepath: src/app/main.ts

Paths must be relative: directory segments of letters, digits, underscores
and hyphens, ending in a file extension. Anything containing "..", starting
with "/", or using backslashes is rejected and the line is treated as an
ordinary comment. Rejection is silent — carve declines to act rather than
erroring, so unsafe paths can never escape the output directory.

Content rules
-------------

- Everything between a declaration and the next declaration (or end of
  input) belongs to that path. Fence delimiter lines are removed; prose
  between fences under the same path is kept.
- Comments inside a fenced block are never interpreted as declarations.
- A description after the path is preserved as a comment line at the top
  of the extracted file.
- If the same path is declared twice, the first declaration wins.
`

const topicArtifacts = `Artifact Spans
==============

Some assistants wrap generated content in tagged markup:

    <antArtifact identifier="app" type="application/vnd.ant.code"
                 language="python" title="App">
    ...
    </antArtifact>

carve scans every such span in the document. A span is only considered
when its type attribute names code or html content; markdown, SVG, and
diagram artifacts are ignored even if their bodies look like code.

Inside a qualifying span the normal path-declaration rules apply. The
span's language attribute (or, failing that, a best-effort sniff of the
content) becomes the language hint for files extracted from it.

A code span with no internal path declaration produces no files. Give each
file inside an artifact a path comment if you want it materialized.

When the same path is produced both by a bare code block and by an
artifact span, the bare block wins.
`

const topicConfig = `Configuration Reference
=======================

carve reads .carve.yaml from the current directory (override with
--config). Every field is optional; flags override the file.

  output-dir: .          Where extracted files are written.
  on-existing: prompt    prompt | overwrite | skip
  ignore: []             Glob patterns (doublestar syntax); declared paths
                         matching any pattern are never materialized.
  debounce-ms: 500       Quiet period before a watch-mode re-run.

Example:

  output-dir: generated
  on-existing: skip
  ignore:
    - "**/*.min.js"
    - "vendor/**"
  debounce-ms: 250
`

const topicWatch = `Watch Mode
==========

carve watch runs one extraction immediately, then re-runs it after every
change to the transcript, debounced so a burst of editor saves triggers a
single pass.

Each pass is a full, independent re-extraction: carve re-reads the whole
document and resolves every file again. Combined with the on-existing
policy this makes watching idempotent — an unchanged document produces
byte-identical files.

Overwrite prompts are interactive, which does not mix well with a loop, so
watch mode requires a non-interactive policy: pass --force or
--skip-existing, or set on-existing to overwrite or skip in .carve.yaml.

Run reports are saved after every pass; carve report always shows the most
recent one.
`
