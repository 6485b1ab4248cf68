package app

import (
	"fmt"
	"slices"
	"strings"
)

// Command はmovlistバイナリのサブコマンド。
type Command string

const (
	// CommandServe はAPIサーバーを起動する。引数省略時の既定値。
	CommandServe Command = "serve"
	// CommandWorker は期限切れセッションを定期削除するワーカーを起動する。
	CommandWorker Command = "worker"
	// CommandMigrate はマイグレーションを適用して終了する。
	CommandMigrate Command = "migrate"
	// CommandHealthcheck は稼働中サーバーの /health を叩いて終了する。
	// distrolessイメージにはcurlがないため、DockerのHEALTHCHECKから使う。
	CommandHealthcheck Command = "healthcheck"
)

var commandSummaries = map[Command]string{
	CommandServe:       "start the HTTP API",
	CommandWorker:      "run the session cleanup loop",
	CommandMigrate:     "apply database migrations and exit",
	CommandHealthcheck: "call /health on SERVER_PORT and exit",
}

// ParseCommand は先頭の引数をサブコマンドとして解釈する。残りの引数は無視する。
// 引数がなければCommandServeを返し、未知のサブコマンドはエラーにする。
func ParseCommand(args []string) (Command, error) {
	if len(args) == 0 {
		return CommandServe, nil
	}

	cmd := Command(args[0])
	if _, ok := commandSummaries[cmd]; !ok {
		return "", fmt.Errorf("unknown command %q\n%s", args[0], Usage())
	}
	return cmd, nil
}

// Usage はサブコマンド一覧を返す。
func Usage() string {
	names := make([]string, 0, len(commandSummaries))
	for cmd := range commandSummaries {
		names = append(names, string(cmd))
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("usage: movlist [command]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-12s %s\n", name, commandSummaries[Command(name)])
	}
	return b.String()
}
