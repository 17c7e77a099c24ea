// magangctl adalah CLI untuk API magang-backend.
//
//	magangctl [-url URL] [-token TOKEN] <perintah> [argumen]
//
// Token juga bisa dari env MAGANG_TOKEN, URL dari MAGANG_URL. Jam presensi
// mengikuti env PRESENSI_* yang sama dengan server, atau -sync-jam untuk
// mengambilnya dari /api/presensi/hari-ini.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"magang-backend/config"
	"magang-backend/internal/client"
	"magang-backend/internal/presensi"
)

const usage = `Perintah:
  login <email> <password>
  presensi hari-ini
  presensi masuk|keluar <latitude> <longitude>
  laporan list
  laporan upload <file> <judul> [deskripsi]
  laporan resubmit <id> <file>
  laporan delete <id>
  laporan download <fileId> <tujuan>
  review <id> <pending|sesuai|revisi> [catatan]
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, client.ErrUnauthorized) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("magangctl", flag.ContinueOnError)
	fs.SetOutput(out)
	baseURL := fs.String("url", config.GetEnv("MAGANG_URL", "http://localhost:5000"), "alamat API")
	token := fs.String("token", config.GetEnv("MAGANG_TOKEN", ""), "bearer token hasil login")
	maxMB := fs.Int("max-mb", config.GetEnvAsInt("MAX_UPLOAD_MB", 4), "batas ukuran upload (MB)")
	syncJam := fs.Bool("sync-jam", false, "ambil jam presensi dari server sebelum masuk/keluar")
	fs.Usage = func() {
		fmt.Fprintln(out, "Pemakaian: magangctl [flag] <perintah>")
		fs.PrintDefaults()
		fmt.Fprint(out, usage)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	c := client.New(*baseURL)
	c.MaxMB = *maxMB
	c.Gate = presensi.NewGate(config.Load().Presensi)
	s := client.Session{Token: *token}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.New("perintah wajib diisi")
	}

	switch rest[0] {
	case "login":
		if len(rest) != 3 {
			return errors.New("login <email> <password>")
		}
		sess, u, err := c.Login(ctx, rest[1], rest[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Login sebagai %s (%s)\n", u.Name, u.Role)
		fmt.Fprintln(out, sess.Token)
		return nil
	case "presensi":
		if *syncJam {
			if err := c.SyncGate(ctx, s); err != nil {
				return err
			}
		}
		return presensiCmd(ctx, c, s, rest[1:], out)
	case "laporan":
		return laporanCmd(ctx, c, s, rest[1:], out)
	case "review":
		if len(rest) < 3 {
			return errors.New("review <id> <status> [catatan]")
		}
		id, err := parseID(rest[1])
		if err != nil {
			return err
		}
		v, err := c.Review(ctx, s, id, rest[2], arg(rest, 3))
		if err != nil {
			return err
		}
		return printJSON(out, v)
	}

	fs.Usage()
	return fmt.Errorf("perintah %q tidak dikenal", rest[0])
}

func presensiCmd(ctx context.Context, c *client.Client, s client.Session, args []string, out io.Writer) error {
	switch arg(args, 0) {
	case "hari-ini":
		today, err := c.Today(ctx, s)
		if err != nil {
			return err
		}
		return printJSON(out, today)
	case "masuk", "keluar":
		if len(args) != 3 {
			return fmt.Errorf("presensi %s <latitude> <longitude>", args[0])
		}
		lat, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("latitude tidak valid: %w", err)
		}
		lng, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("longitude tidak valid: %w", err)
		}

		absen := c.CheckIn
		if args[0] == "keluar" {
			absen = c.CheckOut
		}
		res, err := absen(ctx, s, lat, lng)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s pukul %s WIB\n", res.Message, res.Waktu)
		return nil
	}
	return errors.New("presensi hari-ini|masuk|keluar")
}

func laporanCmd(ctx context.Context, c *client.Client, s client.Session, args []string, out io.Writer) error {
	switch arg(args, 0) {
	case "list":
		list, err := c.ListReports(ctx, s)
		if err != nil {
			return err
		}
		for _, l := range list {
			fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", l.ID, l.Status, l.Judul, l.FileID)
		}
		return nil
	case "upload":
		if len(args) < 3 {
			return errors.New("laporan upload <file> <judul> [deskripsi]")
		}
		content, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		l, err := c.UploadReport(ctx, s, client.Upload{
			Filename:  filepath.Base(args[1]),
			Content:   content,
			Judul:     args[2],
			Deskripsi: arg(args, 3),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Laporan %d terupload (%s)\n", l.ID, l.Status)
		return nil
	case "resubmit":
		if len(args) != 3 {
			return errors.New("laporan resubmit <id> <file>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		content, err := os.ReadFile(args[2])
		if err != nil {
			return err
		}
		l, err := c.ResubmitFile(ctx, s, id, filepath.Base(args[2]), content)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Laporan %d diganti, status %s\n", l.ID, l.Status)
		return nil
	case "delete":
		id, err := parseID(arg(args, 1))
		if err != nil {
			return err
		}
		if err := c.DeleteReport(ctx, s, id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Laporan %d dihapus\n", id)
		return nil
	case "download":
		if len(args) != 3 {
			return errors.New("laporan download <fileId> <tujuan>")
		}
		f, err := os.Create(args[2])
		if err != nil {
			return err
		}
		n, err := c.DownloadReport(ctx, s, args[1], f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(args[2])
			return err
		}
		fmt.Fprintf(out, "%d byte disimpan ke %s\n", n, args[2])
		return nil
	}
	return errors.New("laporan list|upload|resubmit|delete|download")
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id %q tidak valid", s)
	}
	return uint(id), nil
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
