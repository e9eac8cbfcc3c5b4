package imwidgets

import (
	"bytes"
	"fmt"
	"html/template"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.imweb-btn {
	padding: 4px 15px;
	border: 1px solid #d9d9d9;
	border-radius: 2px;
	background: #fff;
	cursor: pointer;
}
.imweb-btn:hover { color: #40a9ff; border-color: #40a9ff; }
.imweb-icon { display: inline-block; line-height: 0; }
</style>
<script type="text/javascript">
window.onload = () => {
	const body = document.body;
	const debug = {{.Debug}};

	if (!window["WebSocket"]) {
		body.innerHTML = "<b>Your browser does not support WebSockets.</b>";
		return;
	}

	let ws;
	let boot = null;
	const connect = () => {
		body.innerHTML = "";
		const scheme = document.location.protocol === "https:" ? "wss://" : "ws://";
		ws = new WebSocket(scheme + document.location.host + "/ws");
		ws.onclose = (e) => {
			console.log('Socket is closed. Reconnect will be attempted in 1 second.', e.reason);
			setTimeout(() => {
				connect();
			}, 1000);
		};
		ws.onerror = (err) => {
			console.error('Socket encountered error: ', err, 'Closing socket');
			ws.close();
		};
		ws.onmessage = (e) => {
			const message = JSON.parse(e.data);
			switch (message.kind) {
			case "BOOT":
				if (debug && boot !== null && boot !== message.data) {
					document.location.reload();
					return;
				}
				boot = message.data;
				break;
			case "ADD":
				body.insertAdjacentHTML("beforeend", message.data);
				break;
			case "REPLACE": {
				const el = document.getElementById(message.id);
				if (el) {
					el.outerHTML = message.data;
				}
				break;
			}
			case "ERROR":
				console.error("callback error on " + message.id + ": " + message.data);
				break;
			}
		};
	};

	connect();
	document.addEventListener("click", (e) => {
		const el = e.target.closest("[data-imweb-click]");
		if (el && el.id && ws.readyState === WebSocket.OPEN) {
			ws.send(JSON.stringify({id: el.id, event: "clicked"}));
		}
	});
};
</script>
</head>
<body></body>
</html>
`))

func renderPage(title string, debug bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, struct {
		Title string
		Debug bool
	}{title, debug}); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
