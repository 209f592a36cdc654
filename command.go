package main

import (
	"fmt"

	"github.com/MixinNetwork/ratnum/common"
	"github.com/MixinNetwork/ratnum/config"
	"github.com/MixinNetwork/ratnum/logger"
	"github.com/urfave/cli/v2"
)

var custom = config.Default()

func setupCmd(c *cli.Context) error {
	custom = config.Default()
	if file := c.String("config"); file != "" {
		cfg, err := config.Initialize(file)
		if err != nil {
			return err
		}
		custom = cfg
	}
	if l := c.Int("log"); l > 0 {
		custom.Log.Level = l
	}
	if f := c.String("filter"); f != "" {
		custom.Log.Filter = f
	}

	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	return logger.SetFilter(custom.Log.Filter)
}

func render(r common.RationalNumber) string {
	if custom.Format.FractionOnly {
		return r.Fraction()
	}
	return r.String()
}

func evaluate(op string, a, b common.RationalNumber) (common.RationalNumber, error) {
	switch op {
	case "add":
		return a.Add(b)
	case "sub":
		return a.Sub(b)
	case "mul":
		return a.Mul(b)
	case "div":
		return a.Div(b)
	}
	return common.RationalNumber{}, fmt.Errorf("invalid operation %s", op)
}

func parseOperands(c *cli.Context) (a, b common.RationalNumber, err error) {
	a, err = common.ParseRational(c.String("a"))
	if err != nil {
		return a, b, fmt.Errorf("operand a: %w", err)
	}
	b, err = common.ParseRational(c.String("b"))
	if err != nil {
		return a, b, fmt.Errorf("operand b: %w", err)
	}
	return a, b, nil
}

func evalCmd(c *cli.Context) error {
	a, b, err := parseOperands(c)
	if err != nil {
		return err
	}
	op := c.String("op")
	v, err := evaluate(op, a, b)
	if err != nil {
		return err
	}
	logger.Verbosef("%s %s %s = %s", op, a.Fraction(), b.Fraction(), v.Fraction())
	fmt.Fprintln(c.App.Writer, render(v))
	return nil
}

func compareCmd(c *cli.Context) error {
	a, b, err := parseOperands(c)
	if err != nil {
		return err
	}
	logger.Verbosef("cmp %s %s", a.Fraction(), b.Fraction())
	fmt.Fprintf(c.App.Writer, "cmp:\t%d\n", a.Cmp(b))
	fmt.Fprintf(c.App.Writer, "equals:\t%t\n", a.Equals(b))
	fmt.Fprintf(c.App.Writer, "less:\t%t\n", a.LessThan(b))
	return nil
}

func parseCmd(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no literal to parse")
	}
	for _, s := range c.Args().Slice() {
		r, err := common.ParseRational(s)
		if err != nil {
			return err
		}
		logger.Verbosef("parse %q = %s", s, r.Fraction())
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%g\n", s, render(r), r.Fraction(), r.Float64())
	}
	return nil
}

func decimalCmd(c *cli.Context) error {
	if c.Bool("reverse") {
		r, err := common.NewRationalFromDecimal(c.String("value"))
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, render(r))
		return nil
	}

	places := custom.Format.DecimalPlaces
	if c.IsSet("places") {
		places = int32(c.Int("places"))
	}
	if places < 0 || places > config.MaximumDecimalPlaces {
		return fmt.Errorf("invalid decimal places %d", places)
	}
	r, err := common.ParseRational(c.String("value"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, r.StringFixed(places))
	return nil
}

func demoCmd(c *cli.Context) error {
	w := c.App.Writer
	half := common.MustRational(1, 2)
	third := common.MustRational(1, 3)
	samples := []common.RationalNumber{
		common.MustRational(1, 8),
		common.MustRational(4, 2),
		common.MustRational(7, 2),
		common.MustRational(-6, 8),
		common.NewRationalFromInteger(5),
		half.Copy(),
		{},
	}
	for _, r := range samples {
		fmt.Fprintf(w, "value:\t%s\t%s\t%g\n", render(r), r.Fraction(), r.Float64())
	}

	for _, op := range []string{"add", "sub", "mul", "div"} {
		v, err := evaluate(op, half, third)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\t%s %s = %s\n", op, render(half), render(third), render(v))
	}
	fmt.Fprintf(w, "equals:\t%s %s = %t\n", render(common.MustRational(2, 4)), render(half), common.MustRational(2, 4).Equals(half))
	fmt.Fprintf(w, "less:\t%s %s = %t\n", render(third), render(half), third.LessThan(half))

	for _, s := range []string{"3", "3/4", "6/-8", "3/4/5", "a/2"} {
		r, err := common.ParseRational(s)
		if err != nil {
			fmt.Fprintf(w, "parse:\t%q failed: %v\n", s, err)
			continue
		}
		fmt.Fprintf(w, "parse:\t%q = %s\n", s, render(r))
	}

	if _, err := common.NewRational(1, 0); err != nil {
		fmt.Fprintf(w, "make:\t1/0 failed: %v\n", err)
	}
	if _, err := half.Div(common.ZeroRat); err != nil {
		fmt.Fprintf(w, "div:\t%s / 0 failed: %v\n", render(half), err)
	}
	return nil
}
