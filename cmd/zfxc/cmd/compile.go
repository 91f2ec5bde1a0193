package cmd

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sonicyouth98/poczfx/internal/bytecode"
	"github.com/sonicyouth98/poczfx/internal/compiler"
	"github.com/spf13/cobra"
)

var (
	compileOutputFile string
	compileEvalExpr   string
	compileDisasm     bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile ZFX source to a bytecode file",
	Long: `Compile a ZFX program to bytecode and save it as a .zfxc file.

Each code word is written little-endian as a raw 32-bit value, in the
order the emitter produced them; the symbol table is not persisted to
the file (it exists for human-readable disassembly only).

Examples:
  zfxc compile script.zfx
  zfxc compile script.zfx -o out.zfxc --disassemble
  zfxc compile -e "@clr + 1;" --disassemble`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileOutputFile, "output", "o", "", "output file (default: <input>.zfxc)")
	compileCmd.Flags().StringVarP(&compileEvalExpr, "eval", "e", "", "compile inline source instead of reading from a file")
	compileCmd.Flags().BoolVar(&compileDisasm, "disassemble", false, "print disassembled bytecode after compiling")
}

func runCompile(cmd *cobra.Command, args []string) error {
	input, err := readSource(compileEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintln(os.Stderr, "compiling...")
	}

	res, err := compiler.Compile(input)
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "  code words: %d\n", len(res.Codes))
		fmt.Fprintf(os.Stderr, "  symbols:    %d\n", len(res.Syms))
		fmt.Fprintf(os.Stderr, "  registers:  %d\n", res.NRegs)
	}

	if compileDisasm {
		bytecode.NewDisassembler(bytecode.Program{Codes: res.Codes, Syms: res.Syms}, os.Stderr).Disassemble()
	}

	if compileOutputFile == "" && (compileEvalExpr != "" || len(args) == 0) {
		// Inline one-off compiles and stdin input have no input filename to
		// derive an output name from; the disassembly (or verbose counts)
		// is the output. Require -o to persist bytecode in either case.
		return nil
	}

	outFile := compileOutputFile
	if outFile == "" {
		filename := args[0]
		ext := filepath.Ext(filename)
		if ext != "" {
			outFile = strings.TrimSuffix(filename, ext) + ".zfxc"
		} else {
			outFile = filename + ".zfxc"
		}
	}

	data := encodeCodeWords(res.Codes)
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "bytecode written to %s (%d bytes)\n", outFile, len(data))
	} else {
		fmt.Printf("compiled -> %s\n", outFile)
	}

	return nil
}

func encodeCodeWords(codes []uint32) []byte {
	data := make([]byte, len(codes)*4)
	for i, w := range codes {
		binary.LittleEndian.PutUint32(data[i*4:], w)
	}
	return data
}
