package mcpserver

// PostFormatContract describes the canonical post file format that
// LLM consumers can rely on when reading posts.
const PostFormatContract = `# Raido Post Format Contract

Every Markdown post stored in Raido follows this structure.

## Structure

` + "```" + `markdown
---
title: "Human-readable title"       # REQUIRED – shown in listings
date: "2020-01-02"                  # REQUIRED – ISO-8601 date; posts are
                                    # listed in descending lexical order
---

Body text in standard Markdown (CommonMark + GFM).
` + "```" + `

## Rules

1. **Frontmatter is mandatory.** The ` + "```" + `---` + "```" + ` fences must be the first
   thing in the file (no leading blank lines before the opening fence).
2. **Values are scalar strings.** No nested structures.
3. **` + "`" + `date` + "`" + ` is an opaque string.** It is never parsed as a calendar
   date; sorting is plain string comparison, so keep it ISO-8601-sortable.
4. **The identifier is the filename stem.** ` + "`" + `pre-rendering.md` + "`" + ` is
   addressed as ` + "`" + `pre-rendering` + "`" + `; one flat directory, no subfolders.
5. **Posts are read-only.** Content changes only by editing the backing
   files; there is no create/update/delete surface.
6. **Encoding** is UTF-8 with a trailing newline.
`
