package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"blogCPT/internal/client"
	"blogCPT/internal/config"
	"blogCPT/internal/models"

	"github.com/dustin/go-humanize"
)

const usage = `usage: blogctl <command> [flags]

commands:
  register -email E -password P -name N
  login    -email E -password P
  logout
  whoami
  list
  get      <id>
  create   -title T -content C [-author A]
  update   [-title T] [-content C] <id>
  delete   <id>
`

var errUsage = errors.New("invalid usage")

func main() {
	cfg := config.LoadClient()
	logger := config.NewLogger(cfg.Logging, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session, err := client.NewSession(client.NewFileStore(cfg.SessionFile), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "blogctl:", err)
		os.Exit(1)
	}

	if err := run(ctx, client.NewClient(cfg.APIURL, session), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "blogctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch command {
	case "register":
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		name := fs.String("name", "", "display name")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		user, err := c.Register(ctx, *email, *password, *name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "registered %s, now run: blogctl login -email %s\n", user.Email, user.Email)

	case "login":
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		user, err := c.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "signed in as %s\n", displayName(user))

	case "logout":
		if err := c.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(out, "signed out")

	case "whoami":
		user, err := c.CurrentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s <%s> (%s)\n", displayName(user), user.Email, user.UserID)

	case "list":
		posts, err := c.ListPosts(ctx)
		if err != nil {
			return err
		}
		printPosts(out, posts)

	case "get":
		if len(args) != 1 {
			return errUsage
		}
		post, err := c.GetPost(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\nby %s, %s\n\n%s\n", post.Title, post.Author, humanize.Time(post.CreatedAt), post.Content)

	case "create":
		title := fs.String("title", "", "post title")
		content := fs.String("content", "", "post body")
		author := fs.String("author", "", "author name shown on the post")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		id, err := c.CreatePost(ctx, *title, *content, *author)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, id)

	case "update":
		title := fs.String("title", "", "new title")
		content := fs.String("content", "", "new body")
		if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
			return errUsage
		}
		var newTitle, newContent *string
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "title":
				newTitle = title
			case "content":
				newContent = content
			}
		})
		if err := c.UpdatePost(ctx, fs.Arg(0), newTitle, newContent); err != nil {
			return err
		}
		fmt.Fprintln(out, "updated")

	case "delete":
		if len(args) != 1 {
			return errUsage
		}
		if err := c.DeletePost(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(out, "deleted")

	default:
		return errUsage
	}

	return nil
}

func printPosts(out io.Writer, posts []models.Post) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCREATED")
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.PostID, p.Title, p.Author, humanize.Time(p.CreatedAt))
	}
	tw.Flush()
}

func displayName(user *models.User) string {
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Email
}
