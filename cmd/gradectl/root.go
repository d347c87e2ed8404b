package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tutorbase/grading-backend/internal/answercheck"
	"github.com/tutorbase/grading-backend/internal/model"
)

var rootCmd = &cobra.Command{
	Use:   "gradectl",
	Short: "Answer-key QA tool for the grading engine",
	Long:  "gradectl runs the math answer-equivalence engine from the command line: normalize answers, compare pairs, grade against a descriptor, or replay a JSONL case file.",
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(batchCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <answer>",
	Short: "Print the canonical form of an answer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(answercheck.Normalize(answercheck.Sanitize(args[0])))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <user> <correct>",
	Short: "Compare two answers for mathematical equivalence",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		alternates, _ := cmd.Flags().GetStringSlice("alternates")
		mode := resolveMode(cmd)

		d := model.AnswerDescriptor{
			AnswerType: model.AnswerTypeShortAnswer,
			Value:      model.FlexString(answercheck.Sanitize(args[1])),
			Alternates: alternates,
		}
		res := answercheck.ValidateAnswer(answercheck.Sanitize(args[0]), d, mode)
		printResult(res)
		if !res.IsCorrect {
			os.Exit(1)
		}
		return nil
	},
}

var gradeCmd = &cobra.Command{
	Use:   "grade <answer>",
	Short: "Grade an answer against a typed descriptor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answerType, _ := cmd.Flags().GetString("type")
		correct, _ := cmd.Flags().GetString("correct")
		alternates, _ := cmd.Flags().GetStringSlice("alternates")
		tolFlag, _ := cmd.Flags().GetFloat64("tolerance")
		mode := resolveMode(cmd)

		d := model.AnswerDescriptor{
			AnswerType: model.AnswerType(answerType),
			Value:      model.FlexString(correct),
			Alternates: alternates,
		}
		if tolFlag > 0 {
			d.Tolerance = &tolFlag
		}
		res := answercheck.ValidateAnswer(answercheck.Sanitize(args[0]), d, mode)
		printResult(res)
		if !res.IsCorrect {
			os.Exit(1)
		}
		return nil
	},
}

// batchCase is one line of a gradectl batch file.
type batchCase struct {
	Answer     string   `json:"answer"`
	Correct    string   `json:"correct"`
	AnswerType string   `json:"answer_type"`
	Alternates []string `json:"alternates"`
	Expect     *bool    `json:"expect"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <cases.jsonl>",
	Short: "Replay a JSONL file of grading cases",
	Long:  "Each line is a JSON object {answer, correct, answer_type, alternates, expect}. When expect is present, a mismatching verdict counts as a failure and the command exits non-zero.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		mode := resolveMode(cmd)
		var total, correct, failed int

		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for lineNo := 1; sc.Scan(); lineNo++ {
			line := sc.Bytes()
			if len(line) == 0 {
				continue
			}
			var bc batchCase
			if err := json.Unmarshal(line, &bc); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}

			answerType := model.AnswerType(bc.AnswerType)
			if answerType == "" {
				answerType = model.AnswerTypeShortAnswer
			}
			d := model.AnswerDescriptor{
				AnswerType: answerType,
				Value:      model.FlexString(bc.Correct),
				Alternates: bc.Alternates,
			}
			res := answercheck.ValidateAnswer(answercheck.Sanitize(bc.Answer), d, mode)

			total++
			if res.IsCorrect {
				correct++
			}
			status := "incorrect"
			if res.IsCorrect {
				status = "correct"
			}
			if bc.Expect != nil && *bc.Expect != res.IsCorrect {
				failed++
				status += " (UNEXPECTED, wanted " + strconv.FormatBool(*bc.Expect) + ")"
			}
			fmt.Printf("%4d  %-10s  %-12s  %q vs %q\n", lineNo, status, res.MatchType, bc.Answer, bc.Correct)
		}
		if err := sc.Err(); err != nil {
			return err
		}

		fmt.Printf("\n%d cases, %d graded correct, %d unexpected\n", total, correct, failed)
		if failed > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("mode", "algebraic", "match mode: strict, tolerant or algebraic")

	compareCmd.Flags().StringSlice("alternates", nil, "additional accepted answers")

	gradeCmd.Flags().String("type", "short_answer", "answer type of the question")
	gradeCmd.Flags().String("correct", "", "stored correct answer")
	gradeCmd.Flags().StringSlice("alternates", nil, "additional accepted answers")
	gradeCmd.Flags().Float64("tolerance", 0, "explicit tolerance override")
	_ = gradeCmd.MarkFlagRequired("correct")
}

func resolveMode(cmd *cobra.Command) model.MatchMode {
	raw, _ := cmd.Flags().GetString("mode")
	mode, ok := model.ParseMatchMode(raw)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q, using algebraic\n", raw)
	}
	return mode
}

func printResult(res model.ValidationResult) {
	fmt.Printf("correct:    %v\n", res.IsCorrect)
	fmt.Printf("match_type: %s\n", res.MatchType)
	fmt.Printf("mode:       %s\n", res.Mode)
	fmt.Printf("user:       %q\n", res.NormalizedUser)
	fmt.Printf("answer:     %q\n", res.NormalizedCorrect)
	if res.Tolerance != nil {
		fmt.Printf("tolerance:  %g\n", *res.Tolerance)
	}
}
