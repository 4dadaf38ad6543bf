/*
 * Cadence - The resource-oriented smart contract programming language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/turbolent/prettier"

	"github.com/onflow/opresolve/errors"
)

type Expression interface {
	HasPosition
	fmt.Stringer
	isExpression()
	Walk(walkChild func(Expression))
	Doc() prettier.Doc
}

// Walk calls walkChild for the given expression and, depth-first, for all of its sub-expressions
func Walk(expression Expression, walkChild func(Expression)) {
	var walk func(Expression)
	walk = func(e Expression) {
		walkChild(e)
		e.Walk(walk)
	}
	walk(expression)
}

// isCompound returns true if the expression must be parenthesized
// when it is printed as the argument of another expression
func isCompound(expression Expression) bool {
	switch expression.(type) {
	case *OperatorExpression, *ChainExpression, *JuxtapositionExpression:
		return true
	}
	return false
}

func argumentDoc(expression Expression) prettier.Doc {
	doc := expression.Doc()
	if isCompound(expression) {
		return prettier.WrapParentheses(doc, prettier.SoftLine{})
	}
	return doc
}

func operatorSeparator(operator Operator) string {
	if operator.IsWord() {
		return " "
	}
	return ""
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier string
	Range
}

var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(identifier string, r Range) *IdentifierExpression {
	return &IdentifierExpression{
		Identifier: identifier,
		Range:      r,
	}
}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) Walk(_ func(Expression)) {
	// NO-OP
}

func (e *IdentifierExpression) String() string {
	return e.Identifier
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier)
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "IdentifierExpression",
		Alias: (*Alias)(e),
	})
}

// LiteralExpression

type LiteralExpression struct {
	Literal string
	Range
}

var _ Expression = &LiteralExpression{}

func NewLiteralExpression(literal string, r Range) *LiteralExpression {
	return &LiteralExpression{
		Literal: literal,
		Range:   r,
	}
}

func (*LiteralExpression) isExpression() {}

func (*LiteralExpression) Walk(_ func(Expression)) {
	// NO-OP
}

func (e *LiteralExpression) String() string {
	return e.Literal
}

func (e *LiteralExpression) Doc() prettier.Doc {
	return prettier.Text(e.Literal)
}

func (e *LiteralExpression) MarshalJSON() ([]byte, error) {
	type Alias LiteralExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "LiteralExpression",
		Alias: (*Alias)(e),
	})
}

// OperatorExpression is the application of a prefix, postfix, infix, or multifix operator.
// A multifix application is the flattened form of repeated applications
// of the same operator, e.g. `a + b + c`.
type OperatorExpression struct {
	Fixity    Fixity
	Operator  Operator
	Arguments []Expression
}

var _ Expression = &OperatorExpression{}

func NewPrefixExpression(operator Operator, argument Expression) *OperatorExpression {
	return &OperatorExpression{
		Fixity:    FixityPrefix,
		Operator:  operator,
		Arguments: []Expression{argument},
	}
}

func NewPostfixExpression(operator Operator, argument Expression) *OperatorExpression {
	return &OperatorExpression{
		Fixity:    FixityPostfix,
		Operator:  operator,
		Arguments: []Expression{argument},
	}
}

func NewInfixExpression(operator Operator, left, right Expression) *OperatorExpression {
	return &OperatorExpression{
		Fixity:    FixityInfix,
		Operator:  operator,
		Arguments: []Expression{left, right},
	}
}

// NewMultifixExpression returns an infix application for two arguments,
// and a multifix application for more than two.
func NewMultifixExpression(operator Operator, arguments []Expression) *OperatorExpression {
	fixity := FixityMultifix
	if len(arguments) == 2 {
		fixity = FixityInfix
	}
	return &OperatorExpression{
		Fixity:    fixity,
		Operator:  operator,
		Arguments: arguments,
	}
}

func (*OperatorExpression) isExpression() {}

func (e *OperatorExpression) Walk(walkChild func(Expression)) {
	for _, argument := range e.Arguments {
		walkChild(argument)
	}
}

func (e *OperatorExpression) String() string {
	var sb strings.Builder
	sb.WriteByte('(')

	switch e.Fixity {
	case FixityPrefix:
		sb.WriteString(e.Operator.Name)
		sb.WriteString(operatorSeparator(e.Operator))
		sb.WriteString(e.Arguments[0].String())

	case FixityPostfix:
		sb.WriteString(e.Arguments[0].String())
		sb.WriteString(operatorSeparator(e.Operator))
		sb.WriteString(e.Operator.Name)

	case FixityInfix, FixityMultifix:
		for i, argument := range e.Arguments {
			if i > 0 {
				sb.WriteByte(' ')
				sb.WriteString(e.Operator.Name)
				sb.WriteByte(' ')
			}
			sb.WriteString(argument.String())
		}

	default:
		panic(errors.NewUnreachableError())
	}

	sb.WriteByte(')')
	return sb.String()
}

func (e *OperatorExpression) Doc() prettier.Doc {
	operatorDoc := prettier.Text(e.Operator.Name)

	switch e.Fixity {
	case FixityPrefix:
		return prettier.Concat{
			operatorDoc,
			prettier.Text(operatorSeparator(e.Operator)),
			argumentDoc(e.Arguments[0]),
		}

	case FixityPostfix:
		return prettier.Concat{
			argumentDoc(e.Arguments[0]),
			prettier.Text(operatorSeparator(e.Operator)),
			operatorDoc,
		}

	case FixityInfix, FixityMultifix:
		doc := prettier.Concat{
			prettier.Group{
				Doc: argumentDoc(e.Arguments[0]),
			},
		}
		for _, argument := range e.Arguments[1:] {
			doc = append(doc,
				prettier.Line{},
				operatorDoc,
				prettier.Space,
				prettier.Group{
					Doc: argumentDoc(argument),
				},
			)
		}
		return prettier.Group{
			Doc: doc,
		}
	}

	panic(errors.NewUnreachableError())
}

func (e *OperatorExpression) StartPosition() Position {
	if e.Fixity == FixityPrefix {
		return e.Operator.StartPos
	}
	return e.Arguments[0].StartPosition()
}

func (e *OperatorExpression) EndPosition() Position {
	if e.Fixity == FixityPostfix {
		return e.Operator.EndPos
	}
	return e.Arguments[len(e.Arguments)-1].EndPosition()
}

func (e *OperatorExpression) MarshalJSON() ([]byte, error) {
	type Alias OperatorExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "OperatorExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// ChainExpression is a run of chaining relational operators, e.g. `a < b <= c`,
// which denotes the conjunction of the pairwise comparisons.
type ChainExpression struct {
	First Expression
	Links []ChainLink
}

type ChainLink struct {
	Operator   Operator
	Expression Expression
}

var _ Expression = &ChainExpression{}

func NewChainExpression(first Expression, links []ChainLink) *ChainExpression {
	return &ChainExpression{
		First: first,
		Links: links,
	}
}

func (*ChainExpression) isExpression() {}

func (e *ChainExpression) Walk(walkChild func(Expression)) {
	walkChild(e.First)
	for _, link := range e.Links {
		walkChild(link.Expression)
	}
}

// Operators returns the operators of all links, in order
func (e *ChainExpression) Operators() []Operator {
	operators := make([]Operator, 0, len(e.Links))
	for _, link := range e.Links {
		operators = append(operators, link.Operator)
	}
	return operators
}

func (e *ChainExpression) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(e.First.String())
	for _, link := range e.Links {
		sb.WriteByte(' ')
		sb.WriteString(link.Operator.Name)
		sb.WriteByte(' ')
		sb.WriteString(link.Expression.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (e *ChainExpression) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Group{
			Doc: argumentDoc(e.First),
		},
	}
	for _, link := range e.Links {
		doc = append(doc,
			prettier.Line{},
			prettier.Text(link.Operator.Name),
			prettier.Space,
			prettier.Group{
				Doc: argumentDoc(link.Expression),
			},
		)
	}
	return prettier.Group{
		Doc: doc,
	}
}

func (e *ChainExpression) StartPosition() Position {
	return e.First.StartPosition()
}

func (e *ChainExpression) EndPosition() Position {
	if len(e.Links) == 0 {
		return e.First.EndPosition()
	}
	return e.Links[len(e.Links)-1].Expression.EndPosition()
}

func (e *ChainExpression) MarshalJSON() ([]byte, error) {
	type Alias ChainExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ChainExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// JuxtapositionExpression is a run of adjacent operands without an operator in between,
// denoting function application or multiplication.
type JuxtapositionExpression struct {
	Expressions []Expression
}

var _ Expression = &JuxtapositionExpression{}

func NewJuxtapositionExpression(expressions []Expression) *JuxtapositionExpression {
	return &JuxtapositionExpression{
		Expressions: expressions,
	}
}

func (*JuxtapositionExpression) isExpression() {}

func (e *JuxtapositionExpression) Walk(walkChild func(Expression)) {
	for _, expression := range e.Expressions {
		walkChild(expression)
	}
}

func (e *JuxtapositionExpression) String() string {
	parts := make([]string, 0, len(e.Expressions))
	for _, expression := range e.Expressions {
		parts = append(parts, expression.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (e *JuxtapositionExpression) Doc() prettier.Doc {
	docs := make([]prettier.Doc, 0, len(e.Expressions))
	for _, expression := range e.Expressions {
		docs = append(docs, argumentDoc(expression))
	}
	return prettier.Group{
		Doc: prettier.Indent{
			Doc: prettier.Join(prettier.Line{}, docs...),
		},
	}
}

func (e *JuxtapositionExpression) StartPosition() Position {
	return e.Expressions[0].StartPosition()
}

func (e *JuxtapositionExpression) EndPosition() Position {
	return e.Expressions[len(e.Expressions)-1].EndPosition()
}

func (e *JuxtapositionExpression) MarshalJSON() ([]byte, error) {
	type Alias JuxtapositionExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "JuxtapositionExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// EnclosingExpression is a bracketed expression, e.g. `(a + b)` or `|x|`.
// An empty bracket pair has no arguments.
type EnclosingExpression struct {
	Left      Operator
	Right     Operator
	Arguments []Expression
}

var _ Expression = &EnclosingExpression{}

func NewEnclosingExpression(left, right Operator, arguments []Expression) *EnclosingExpression {
	return &EnclosingExpression{
		Left:      left,
		Right:     right,
		Arguments: arguments,
	}
}

func (*EnclosingExpression) isExpression() {}

func (e *EnclosingExpression) Walk(walkChild func(Expression)) {
	for _, argument := range e.Arguments {
		walkChild(argument)
	}
}

func (e *EnclosingExpression) String() string {
	parts := make([]string, 0, len(e.Arguments))
	for _, argument := range e.Arguments {
		parts = append(parts, argument.String())
	}
	return e.Left.Name +
		operatorSeparator(e.Left) +
		strings.Join(parts, ", ") +
		operatorSeparator(e.Right) +
		e.Right.Name
}

var enclosingExpressionSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (e *EnclosingExpression) Doc() prettier.Doc {
	if len(e.Arguments) == 0 {
		return prettier.Text(e.String())
	}

	argumentDocs := make([]prettier.Doc, len(e.Arguments))
	for i, argument := range e.Arguments {
		argumentDocs[i] = argument.Doc()
	}

	return prettier.Wrap(
		prettier.Text(e.Left.Name+operatorSeparator(e.Left)),
		prettier.Join(enclosingExpressionSeparatorDoc, argumentDocs...),
		prettier.Text(operatorSeparator(e.Right)+e.Right.Name),
		prettier.SoftLine{},
	)
}

func (e *EnclosingExpression) StartPosition() Position {
	return e.Left.StartPos
}

func (e *EnclosingExpression) EndPosition() Position {
	return e.Right.EndPos
}

func (e *EnclosingExpression) MarshalJSON() ([]byte, error) {
	type Alias EnclosingExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "EnclosingExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}
