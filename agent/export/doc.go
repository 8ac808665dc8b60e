// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package export renders agent recommendations as downloadable documents.

Markdown builds the planning document from the requirements, the
recommendation and the template ranking. HTML converts that document with
goldmark and GitHub-flavoured tables. Filename derives a download name from
the agent name.
*/
package export
