package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"millage/internal/client"
	"millage/internal/logger"
	"millage/internal/models"
	"millage/internal/presenter"
)

var (
	addr    = flag.String("addr", "http://localhost:8080", "API server base URL")
	boardID = flag.Int64("board", 1, "board to browse")
	keyword = flag.String("keyword", "", "initial search keyword")
	token   = flag.String("token", os.Getenv("MILLAGE_TOKEN"), "session token (optional)")
)

func main() {
	flag.Parse()
	logger.Init("development", "warn")

	b := &browser{
		client:  client.New(*addr, *token),
		boardID: *boardID,
		keyword: *keyword,
		out:     os.Stdout,
	}

	if err := b.run(context.Background(), os.Stdin); err != nil {
		logger.Get().Fatal().Err(err).Msg("boardctl")
	}
}

type browser struct {
	client  *client.Client
	boardID int64
	keyword string
	out     io.Writer

	// pending holds the page asked for by the last control click.
	pending []int
}

func (b *browser) requestPage(page int) {
	b.pending = append(b.pending, page)
}

func (b *browser) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	page := 1

	for {
		obj, err := b.client.BoardPage(ctx, b.boardID, b.keyword, page)
		if err != nil {
			return err
		}

		view := presenter.Present(*obj, b.requestPage)
		b.render(obj, view)

		next, quit := b.prompt(scanner, view)
		if quit {
			return scanner.Err()
		}
		page = next
	}
}

// prompt reads commands until one of them asks for a page.
func (b *browser) prompt(scanner *bufio.Scanner, view presenter.View[models.Post]) (int, bool) {
	for {
		fmt.Fprint(b.out, "> ")
		if !scanner.Scan() {
			return 0, true
		}

		cmd := strings.TrimSpace(scanner.Text())
		switch {
		case cmd == "q":
			return 0, true
		case cmd == "n":
			view.Next.Click()
		case cmd == "p":
			view.Prev.Click()
		case strings.HasPrefix(cmd, "/"):
			b.keyword = strings.TrimPrefix(cmd, "/")
			return 1, false
		default:
			if n, err := strconv.Atoi(cmd); err == nil && n > 0 {
				return n, false
			}
			fmt.Fprintln(b.out, "commands: n (next), p (prev), <page>, /<keyword>, q")
			continue
		}

		if len(b.pending) == 0 {
			fmt.Fprintln(b.out, "no page that way")
			continue
		}
		page := b.pending[len(b.pending)-1]
		b.pending = b.pending[:0]
		return page, false
	}
}

func (b *browser) render(obj *models.PaginationObject[models.Post], view presenter.View[models.Post]) {
	title := fmt.Sprintf("board %d", b.boardID)
	if b.keyword != "" {
		title += fmt.Sprintf(" matching %q", b.keyword)
	}
	fmt.Fprintf(b.out, "\n%s: %d posts\n", title, obj.TotalCounts)

	if len(view.Results) == 0 {
		fmt.Fprintln(b.out, "  (no posts)")
	}
	for _, p := range view.Results {
		writer := ""
		if p.Writer != nil {
			writer = p.Writer.Nickname
		}
		fmt.Fprintf(b.out, "  #%-5d %-40s %-12s %s [%d]\n",
			p.PostID, p.Title, writer, p.CreatedAt.Format("2006-01-02"), len(p.Comments))
	}

	if !view.ShowControls {
		return
	}

	prev, next := "   ", "   "
	if view.Prev.Enabled {
		prev = "[p]"
	}
	if view.Next.Enabled {
		next = "[n]"
	}
	fmt.Fprintf(b.out, "%s page %d of %d %s\n", prev, view.CurPage, view.TotalPages, next)
}
