package upgrade

import (
	"fmt"

	"github.com/samber/lo"
	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
)

// Message converts whichever of query_graph, knowledge_graph and results are
// present. Absent members stay absent.
func Message(msg apiv0.Message) (apiv1.Message, error) {
	out := apiv1.Message{
		AdditionalProperties: msg.AdditionalProperties.Clone(),
	}
	if msg.QueryGraph != nil {
		qg, err := QueryGraph(*msg.QueryGraph)
		if err != nil {
			return apiv1.Message{}, fmt.Errorf("query_graph: %w", err)
		}
		out.QueryGraph = &qg
	}
	if msg.KnowledgeGraph != nil {
		kg, err := KnowledgeGraph(*msg.KnowledgeGraph)
		if err != nil {
			return apiv1.Message{}, fmt.Errorf("knowledge_graph: %w", err)
		}
		out.KnowledgeGraph = &kg
	}
	if msg.Results != nil {
		results := make([]apiv1.Result, 0, len(*msg.Results))
		for i, r := range *msg.Results {
			converted, err := Result(r)
			if err != nil {
				return apiv1.Message{}, fmt.Errorf("results[%d]: %w", i, err)
			}
			results = append(results, converted)
		}
		out.Results = lo.ToPtr(results)
	}
	return out, nil
}

// Query converts the message of a query and keeps every other member.
func Query(query apiv0.Query) (apiv1.Query, error) {
	if query.Message == nil {
		return apiv1.Query{}, rcerrors.MissingField("Query", "message")
	}
	msg, err := Message(*query.Message)
	if err != nil {
		return apiv1.Query{}, fmt.Errorf("message: %w", err)
	}
	return apiv1.Query{
		Message:              &msg,
		AdditionalProperties: query.AdditionalProperties.Clone(),
	}, nil
}
