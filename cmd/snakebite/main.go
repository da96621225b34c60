// Command snakebite is a thin CLI collaborator over the hdfs package: it
// parses a resolved configuration record plus one subcommand and prints
// results to stdout. Configuration resolution (reading Hadoop XML,
// environment variables, a config file) is left to whatever wraps this
// binary; it only accepts the flags a resolved confload.Config needs
// (spec §1, §6.3).
package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/pborman/getopt/v2"
	"github.com/sirupsen/logrus"

	"github.com/snakebite-go/hdfs/confload"
	"github.com/snakebite-go/hdfs/hdfs"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "snakebite:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	set := getopt.New()
	namenode := set.StringLong("namenode", 'n', "", "namenode host:port")
	user := set.StringLong("user", 'u', os.Getenv("USER"), "effective user")
	useTrash := set.BoolLong("trash", 0, "move deleted paths to trash")
	checkCRC := set.BoolLong("checkcrc", 0, "verify chunk checksums on read")
	set.SetParameters("<command> [args...]")

	if err := set.Getopt(args, nil); err != nil {
		return err
	}
	rest := set.Args()
	if len(rest) == 0 {
		set.PrintUsage(os.Stderr)
		return fmt.Errorf("no command given")
	}

	host, port, err := splitHostPort(*namenode)
	if err != nil {
		return err
	}

	cfg := confload.Config{
		Namenodes:     []confload.Namenode{{Host: host, Port: port}},
		UseTrash:      *useTrash,
		EffectiveUser: *user,
	}

	log := logrus.NewEntry(logrus.StandardLogger())
	client, err := hdfs.New(cfg, log)
	if err != nil {
		return err
	}
	defer client.Close()

	return dispatch(client, rest[0], rest[1:], *checkCRC)
}

func dispatch(client *hdfs.Client, cmd string, args []string, checkCRC bool) error {
	switch cmd {
	case "ls":
		return cmdLs(client, args)
	case "stat":
		return cmdStat(client, args)
	case "cat":
		return cmdCat(client, args, checkCRC)
	case "mkdir":
		return cmdMkdir(client, args)
	case "rm":
		return cmdRm(client, args)
	case "df":
		return cmdDf(client)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdLs(client *hdfs.Client, paths []string) error {
	statuses, err := client.Ls(paths, false, true, true)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		kind := "-"
		if s.IsDir {
			kind = "d"
		}
		fmt.Printf("%s %6d %-12s %-12s %s\n", kind, s.Length, s.Owner, s.Group, s.Path)
	}
	return nil
}

func cmdStat(client *hdfs.Client, paths []string) error {
	statuses, err := client.Stat(paths)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		fmt.Printf("%s\tlength=%d\towner=%s\n", s.Path, s.Length, s.Owner)
	}
	return nil
}

func cmdCat(client *hdfs.Client, paths []string, checkCRC bool) error {
	for _, p := range paths {
		stream, err := client.Cat(p, checkCRC)
		if err != nil {
			return err
		}
		if _, err := stream.WriteTo(os.Stdout); err != nil {
			stream.Close()
			return err
		}
		if err := stream.Close(); err != nil {
			return err
		}
	}
	return nil
}

func cmdMkdir(client *hdfs.Client, paths []string) error {
	results, err := client.Mkdir(paths, true, 0755)
	if err != nil {
		return err
	}
	return printResults(results)
}

func cmdRm(client *hdfs.Client, paths []string) error {
	results, err := client.Delete(paths, true)
	if err != nil {
		return err
	}
	return printResults(results)
}

func cmdDf(client *hdfs.Client) error {
	status, err := client.Df()
	if err != nil {
		return err
	}
	fmt.Printf("capacity=%d used=%d remaining=%d\n", status.Capacity, status.Used, status.Remaining)
	return nil
}

func printResults(results []hdfs.OperationResult) error {
	for _, r := range results {
		if r.Result {
			fmt.Printf("%s: OK\n", r.Path)
			continue
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", r.Path, r.Error)
	}
	return nil
}

func splitHostPort(hostport string) (string, uint16, error) {
	if hostport == "" {
		return "", 0, fmt.Errorf("-namenode is required")
	}
	host, portStr, err := net.SplitHostPort(hostport)
	if err != nil {
		return "", 0, fmt.Errorf("invalid -namenode %q: %w", hostport, err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("invalid -namenode port %q: %w", portStr, err)
	}
	return host, uint16(port), nil
}
