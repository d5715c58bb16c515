// Command chesscompress is the archival CLI: it replays UCI move lists
// or FEN positions through the oracle, compresses them through the
// moves/position codecs, and prints the resulting bytes (or decodes them
// back). FEN parsing/rendering and board-diagram printing live entirely
// here -- see setupFromOracle/setupToFEN in convert.go -- since the core
// codec packages carry the "no chess notation" Non-goal forward
// unmodified.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	chess "github.com/corentings/chess/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	chesscompress "github.com/arnsholt/chess-compression"
	"github.com/arnsholt/chess-compression/board"
	"github.com/arnsholt/chess-compression/oracle"
)

var (
	logLevel  string
	showBoard bool
	log       = logrus.New()
)

func main() {
	root := &cobra.Command{
		Use:   "chesscompress",
		Short: "Compress and decompress chess games and positions",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logging level (panic, fatal, error, warn, info, debug, trace)")
	root.PersistentFlags().BoolVar(&showBoard, "board", false, "print a board diagram of the resulting position to stderr")

	root.AddCommand(movesCmd(), positionCmd())

	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func movesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "Compress or decompress a move stream",
	}
	cmd.AddCommand(movesCompressCmd(), movesDecompressCmd())
	return cmd
}

func movesCompressCmd() *cobra.Command {
	var fen, uci string
	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress a UCI move list replayed from a starting FEN",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := decodeFEN(fen)
			if err != nil {
				return err
			}

			var played []oracle.Move
			current := start
			for _, s := range strings.Split(uci, ",") {
				s = strings.TrimSpace(s)
				if s == "" {
					continue
				}
				m, err := oracle.DecodeUCI(current, s)
				if err != nil {
					return fmt.Errorf("decoding move %q: %w", s, err)
				}
				played = append(played, *m)
				current = oracle.Play(current, m)
			}

			out, err := chesscompress.CompressMoves(start, played)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"plies": len(played), "bytes": len(out)}).Info("compressed moves")
			if showBoard {
				fmt.Fprintln(os.Stderr, board.Format(setupFromOracle(current)))
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&fen, "fen", chess.StartingPosition().String(), "starting position FEN")
	cmd.Flags().StringVar(&uci, "uci", "", "comma-separated UCI moves to replay")
	return cmd
}

func movesDecompressCmd() *cobra.Command {
	var fen string
	var plies int
	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress a move stream read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := decodeFEN(fen)
			if err != nil {
				return err
			}
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}

			decoded, err := chesscompress.DecompressMoves(data, start, plies)
			if err != nil {
				return err
			}
			log.WithField("plies", len(decoded)).Info("decompressed moves")

			current := start
			for _, m := range decoded {
				fmt.Println(chess.UCINotation{}.Encode(current, &m))
				current = oracle.Play(current, &m)
			}
			if showBoard {
				fmt.Fprintln(os.Stderr, board.Format(setupFromOracle(current)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fen, "fen", chess.StartingPosition().String(), "starting position FEN")
	cmd.Flags().IntVar(&plies, "plies", 0, "number of plies to decode")
	return cmd
}

func positionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Compress or decompress a position",
	}
	cmd.AddCommand(positionCompressCmd(), positionDecompressCmd())
	return cmd
}

func positionCompressCmd() *cobra.Command {
	var fen string
	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress a position given as FEN",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := decodeFEN(fen)
			if err != nil {
				return err
			}
			setup := setupFromOracle(pos)
			out, err := chesscompress.CompressPosition(setup)
			if err != nil {
				return err
			}
			log.WithField("bytes", len(out)).Info("compressed position")
			if showBoard {
				fmt.Fprintln(os.Stderr, board.Format(setup))
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&fen, "fen", chess.StartingPosition().String(), "position FEN")
	return cmd
}

func positionDecompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress a position read from stdin, printing its FEN",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			setup, err := chesscompress.DecompressPosition(data)
			if err != nil {
				return err
			}
			log.WithField("bytes", len(data)).Info("decompressed position")
			if showBoard {
				fmt.Fprintln(os.Stderr, board.Format(setup))
			}
			fmt.Println(setupToFEN(setup))
			return nil
		},
	}
	return cmd
}

func decodeFEN(fen string) (*oracle.Position, error) {
	pos := &chess.Position{}
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return nil, fmt.Errorf("parsing FEN %q: %w", fen, err)
	}
	return pos, nil
}
