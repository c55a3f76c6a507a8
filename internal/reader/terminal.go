package reader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Run 在终端中运行阅读器：输入编号进入对应项，b 返回，r 刷新，q 退出。
// in 读到 EOF 时正常返回。
func Run(ctx context.Context, src Source, in io.Reader, out io.Writer) error {
	nav := NewNavigator()
	scanner := bufio.NewScanner(in)

	for {
		st := nav.Current()
		fmt.Fprintln(out, Loading(st))
		screen := Render(ctx, src, st)
		Print(out, screen)

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		switch cmd := strings.TrimSpace(scanner.Text()); cmd {
		case "q", "quit":
			return nil
		case "b", "back":
			nav = nav.Back()
		case "", "r":
			// 重新渲染当前页面
		default:
			n, err := strconv.Atoi(cmd)
			if err != nil || n < 1 || n > len(screen.Items) {
				fmt.Fprintf(out, "opção inválida: %q\n", cmd)
				continue
			}
			nav = nav.Forward(screen.Items[n-1].Next)
		}
	}
}

// Print 把 Screen 输出为纯文本。
func Print(out io.Writer, screen Screen) {
	fmt.Fprintf(out, "\n== %s ==\n", screen.Title)

	switch {
	case screen.Empty != "":
		fmt.Fprintln(out, screen.Empty)
	case screen.Detail != nil:
		fmt.Fprintf(out, "%s\n\n%s\n", screen.Detail.Question, screen.Detail.Body)
		if len(screen.Detail.Tags) > 0 {
			fmt.Fprintf(out, "\n%s\n", strings.Join(screen.Detail.Tags, " "))
		}
	default:
		for i, item := range screen.Items {
			fmt.Fprintf(out, "%2d. %s\n", i+1, item.Label)
			if item.Subtitle != "" {
				fmt.Fprintf(out, "    %s\n", item.Subtitle)
			}
		}
	}

	if screen.ShowBack {
		fmt.Fprintln(out, "\n[b] voltar  [q] sair")
	} else {
		fmt.Fprintln(out, "\n[q] sair")
	}
}
