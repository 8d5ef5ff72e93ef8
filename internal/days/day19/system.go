package day19

import (
	"strings"

	"github.com/specialistvlad/advent2023/internal/input"
)

// Part is a machine part rated on the four categories x, m, a and s.
type Part [4]int

var categories = map[byte]int{'x': 0, 'm': 1, 'a': 2, 's': 3}

// Rule sends a part to Target when its Category compares to Value. The
// last rule of a workflow has no condition (Op is 0).
type Rule struct {
	Category int
	Op       byte
	Value    int
	Target   string
}

// System is the set of named workflows.
type System map[string][]Rule

// ParseSystem splits the input into workflows and parts.
func ParseSystem(in string) (System, []Part, error) {
	blocks := input.Blocks(in)
	if len(blocks) == 0 {
		return nil, nil, input.Malformed("no workflows")
	}
	sys := make(System)
	for _, line := range input.Lines(blocks[0]) {
		name, rules, err := parseWorkflow(line)
		if err != nil {
			return nil, nil, err
		}
		sys[name] = rules
	}
	if _, ok := sys["in"]; !ok {
		return nil, nil, input.Malformed("no \"in\" workflow")
	}
	var parts []Part
	if len(blocks) > 1 {
		for _, line := range input.Lines(blocks[1]) {
			p, err := ParsePart(line)
			if err != nil {
				return nil, nil, err
			}
			parts = append(parts, p)
		}
	}
	return sys, parts, nil
}

func parseWorkflow(line string) (string, []Rule, error) {
	name, body, ok := strings.Cut(line, "{")
	if !ok || !strings.HasSuffix(body, "}") {
		return "", nil, input.Malformed("workflow %q", line)
	}
	var rules []Rule
	for _, text := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
		cond, target, ok := strings.Cut(text, ":")
		if !ok {
			rules = append(rules, Rule{Target: text})
			continue
		}
		if len(cond) < 3 {
			return "", nil, input.Malformed("rule %q", text)
		}
		cat, ok := categories[cond[0]]
		if !ok || (cond[1] != '<' && cond[1] != '>') {
			return "", nil, input.Malformed("rule %q", text)
		}
		v, err := input.Atoi(cond[2:])
		if err != nil {
			return "", nil, err
		}
		rules = append(rules, Rule{Category: cat, Op: cond[1], Value: v, Target: target})
	}
	if len(rules) == 0 || rules[len(rules)-1].Op != 0 {
		return "", nil, input.Malformed("workflow %q has no fallback rule", name)
	}
	return name, rules, nil
}

// ParsePart parses "{x=787,m=2655,a=1222,s=2876}".
func ParsePart(line string) (Part, error) {
	var p Part
	body := strings.TrimSuffix(strings.TrimPrefix(line, "{"), "}")
	for _, field := range strings.Split(body, ",") {
		k, v, ok := strings.Cut(field, "=")
		if !ok || len(k) != 1 {
			return Part{}, input.Malformed("part %q", line)
		}
		cat, ok := categories[k[0]]
		if !ok {
			return Part{}, input.Malformed("category %q", k)
		}
		n, err := input.Atoi(v)
		if err != nil {
			return Part{}, err
		}
		p[cat] = n
	}
	return p, nil
}
