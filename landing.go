package main

import "net/http"

// landingHTML is the small status page served at "/", next to the MCP
// endpoint. It documents the tool surface and the identity headers.
const landingHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Todo MCP Server</title>
<style>
*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;color:#1C1C1E;background:#FFF;line-height:1.6;font-size:16px}
@media(prefers-color-scheme:dark){body{color:#F2F2F7;background:#1C1C1E}code,pre{background:#3A3A3C}}
main{max-width:720px;margin:0 auto;padding:48px 24px}
h1{font-size:28px;margin-bottom:8px}
h2{font-size:18px;margin:32px 0 8px}
p{color:#8E8E93}
code,pre{background:#F2F2F7;border-radius:8px;padding:2px 6px;font-size:14px}
pre{padding:16px;overflow-x:auto;margin:8px 0}
ul{margin:8px 0 8px 24px}
li{margin:4px 0}
</style>
</head>
<body>
<main>
<h1>Todo MCP Server</h1>
<p>A per-user todo list exposed over the Model Context Protocol.</p>

<h2>Endpoint</h2>
<pre>POST /mcp</pre>

<h2>Identity</h2>
<p>The caller is identified by forwarded headers; missing headers fall back to an anonymous identity.</p>
<pre>x-forwarded-user
x-forwarded-email
x-forwarded-name</pre>

<h2>Tools</h2>
<ul>
<li><code>createTodo</code> &mdash; create a todo (title, description, priority, due_date)</li>
<li><code>getTodo</code> / <code>deleteTodo</code> / <code>completeTodo</code> &mdash; operate on a todo by id</li>
<li><code>listTodos</code> &mdash; filter by completion, priority, search; paginate with limit/offset</li>
<li><code>updateTodo</code> &mdash; partial update; omitted fields are untouched</li>
<li><code>getTodoStats</code> &mdash; total, completed, pending, overdue</li>
<li><code>getTodoResources</code> &mdash; todos as <code>todo://</code> resource links</li>
</ul>

<h2>Resources</h2>
<ul>
<li><code>todo://&lt;id&gt;</code> &mdash; a single todo as JSON</li>
<li><code>todo://stats</code> &mdash; aggregate statistics</li>
</ul>
</main>
</body>
</html>
`

func handleLandingPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(landingHTML))
}
