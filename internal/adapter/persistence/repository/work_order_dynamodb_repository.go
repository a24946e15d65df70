package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkOrdersTableName = "ordens_servico"

// storedTimeLayout pads fractional seconds to a fixed width. RFC3339Nano
// trims trailing zeros, and DynamoDB compares S attributes bytewise, so
// variable-width fractions would break range filters on data_abertura.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type partLineItem struct {
	PecaID     string `dynamodbav:"peca_id"`
	Quantidade int    `dynamodbav:"quantidade"`
}

type workOrderItem struct {
	ID            string         `dynamodbav:"id"`
	ClienteID     string         `dynamodbav:"cliente_id"`
	MecanicoID    string         `dynamodbav:"mecanico_id"`
	ServicoIDs    []string       `dynamodbav:"servico_ids"`
	Pecas         []partLineItem `dynamodbav:"pecas"`
	DataAbertura  string         `dynamodbav:"data_abertura"`
	DataConclusao string         `dynamodbav:"data_conclusao,omitempty"`
	Situacao      string         `dynamodbav:"situacao"`
	Valor         *float64       `dynamodbav:"valor,omitempty"`
}

// WorkOrderDynamoRepository persists WorkOrder documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Service ids and part lines are embedded in the order document, so every
// order mutation is a single-item write. Dates are stored as fixed-width UTC
// strings (storedTimeLayout), which keeps BETWEEN filters lexicographically
// correct.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(o))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) List(ctx context.Context, filter entities.WorkOrderFilter, page, size int) ([]entities.WorkOrder, int, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	applyWorkOrderFilter(input, filter)

	raw, err := scanAll(ctx, r.ddb, input)
	if err != nil {
		return nil, 0, err
	}

	all := make([]entities.WorkOrder, 0, len(raw))
	for _, item := range raw {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, err
		}
		all = append(all, fromWorkOrderItem(it))
	}
	// Newest first; id tie-break keeps paging stable.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].DataAbertura.Equal(all[j].DataAbertura) {
			return all[i].DataAbertura.After(all[j].DataAbertura)
		}
		return all[i].ID < all[j].ID
	})

	lo, hi := pageWindow(len(all), page, size)
	return all[lo:hi], len(all), nil
}

func applyWorkOrderFilter(input *dynamodb.ScanInput, filter entities.WorkOrderFilter) {
	expr := ""
	vals := map[string]types.AttributeValue{}
	names := map[string]string{}
	and := func(clause string) {
		if expr != "" {
			expr += " AND "
		}
		expr += clause
	}

	if filter.ClienteID != "" {
		and("#cliente_id = :cliente_id")
		names["#cliente_id"] = "cliente_id"
		vals[":cliente_id"] = &types.AttributeValueMemberS{Value: filter.ClienteID}
	}
	if filter.MecanicoID != "" {
		and("#mecanico_id = :mecanico_id")
		names["#mecanico_id"] = "mecanico_id"
		vals[":mecanico_id"] = &types.AttributeValueMemberS{Value: filter.MecanicoID}
	}
	if filter.DataAberturaInicio != nil {
		and("#data_abertura >= :abertura_inicio")
		names["#data_abertura"] = "data_abertura"
		vals[":abertura_inicio"] = &types.AttributeValueMemberS{Value: filter.DataAberturaInicio.UTC().Format(storedTimeLayout)}
	}
	if filter.DataAberturaFim != nil {
		and("#data_abertura <= :abertura_fim")
		names["#data_abertura"] = "data_abertura"
		vals[":abertura_fim"] = &types.AttributeValueMemberS{Value: filter.DataAberturaFim.UTC().Format(storedTimeLayout)}
	}

	if expr == "" {
		return
	}
	input.FilterExpression = aws.String(expr)
	input.ExpressionAttributeNames = names
	input.ExpressionAttributeValues = vals
}

// Save rewrites the whole order document. The caller holds the per-order
// lock, so a full Put does not clobber concurrent field updates.
func (r *WorkOrderDynamoRepository) Save(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(o))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// Conclude flips the order to concluida in a single conditional write. The
// situacao guard makes the transition first-writer-wins: a zero-value result
// means the order was absent or already concluded.
func (r *WorkOrderDynamoRepository) Conclude(ctx context.Context, id string, valor float64, at time.Time) (entities.WorkOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #situacao = :pendente"),
		UpdateExpression:    aws.String("SET #situacao = :concluida, #valor = :valor, #data_conclusao = :data_conclusao"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#situacao":       "situacao",
			"#valor":          "valor",
			"#data_conclusao": "data_conclusao",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pendente":       &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusPendente)},
			":concluida":      &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusConcluida)},
			":valor":          &types.AttributeValueMemberN{Value: floatToString(valor)},
			":data_conclusao": &types.AttributeValueMemberS{Value: at.UTC().Format(storedTimeLayout)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListOpenedBetween(ctx context.Context, start, end time.Time) ([]entities.WorkOrder, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#data_abertura BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{
			"#data_abertura": "data_abertura",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberS{Value: start.UTC().Format(storedTimeLayout)},
			":end":   &types.AttributeValueMemberS{Value: end.UTC().Format(storedTimeLayout)},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.WorkOrder, 0, len(raw))
	for _, item := range raw {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromWorkOrderItem(it))
	}
	return orders, nil
}

func (r *WorkOrderDynamoRepository) ExistsReferencingCustomer(ctx context.Context, clienteID string) (bool, error) {
	return r.existsMatching(ctx, "#cliente_id = :v",
		map[string]string{"#cliente_id": "cliente_id"},
		map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: clienteID}},
	)
}

func (r *WorkOrderDynamoRepository) ExistsReferencingMechanic(ctx context.Context, mecanicoID string) (bool, error) {
	return r.existsMatching(ctx, "#mecanico_id = :v",
		map[string]string{"#mecanico_id": "mecanico_id"},
		map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: mecanicoID}},
	)
}

func (r *WorkOrderDynamoRepository) ExistsReferencingService(ctx context.Context, servicoID string) (bool, error) {
	return r.existsMatching(ctx, "contains(#servico_ids, :v)",
		map[string]string{"#servico_ids": "servico_ids"},
		map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: servicoID}},
	)
}

// ExistsReferencingPart inspects part lines in-process: contains() cannot
// match a field inside a list of maps, so the scan projects the lines and the
// peca_id check happens here.
func (r *WorkOrderDynamoRepository) ExistsReferencingPart(ctx context.Context, pecaID string) (bool, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#pecas"),
		ExpressionAttributeNames: map[string]string{
			"#pecas": "pecas",
		},
	})
	if err != nil {
		return false, err
	}

	for _, item := range raw {
		var it struct {
			Pecas []partLineItem `dynamodbav:"pecas"`
		}
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return false, err
		}
		for _, line := range it.Pecas {
			if line.PecaID == pecaID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *WorkOrderDynamoRepository) existsMatching(
	ctx context.Context,
	filterExpr string,
	names map[string]string,
	vals map[string]types.AttributeValue,
) (bool, error) {
	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		Select:                    types.SelectCount,
		FilterExpression:          aws.String(filterExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
	}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return false, err
		}
		if out.Count > 0 {
			return true, nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return false, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	lines := make([]partLineItem, 0, len(o.Pecas))
	for _, l := range o.Pecas {
		lines = append(lines, partLineItem{PecaID: l.PecaID, Quantidade: l.Quantidade})
	}

	it := workOrderItem{
		ID:           o.ID,
		ClienteID:    o.ClienteID,
		MecanicoID:   o.MecanicoID,
		ServicoIDs:   o.ServicoIDs,
		Pecas:        lines,
		DataAbertura: o.DataAbertura.UTC().Format(storedTimeLayout),
		Situacao:     string(o.Situacao),
		Valor:        o.Valor,
	}
	if it.ServicoIDs == nil {
		it.ServicoIDs = []string{}
	}
	if o.DataConclusao != nil {
		it.DataConclusao = o.DataConclusao.UTC().Format(storedTimeLayout)
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	abertura, _ := time.Parse(time.RFC3339Nano, it.DataAbertura)

	lines := make([]entities.PartLine, 0, len(it.Pecas))
	for _, l := range it.Pecas {
		lines = append(lines, entities.PartLine{PecaID: l.PecaID, Quantidade: l.Quantidade})
	}

	o := entities.WorkOrder{
		ID:           it.ID,
		ClienteID:    it.ClienteID,
		MecanicoID:   it.MecanicoID,
		ServicoIDs:   it.ServicoIDs,
		Pecas:        lines,
		DataAbertura: abertura,
		Situacao:     entities.WorkOrderStatus(it.Situacao),
		Valor:        it.Valor,
	}
	if o.ServicoIDs == nil {
		o.ServicoIDs = []string{}
	}
	if it.DataConclusao != "" {
		conclusao, err := time.Parse(time.RFC3339Nano, it.DataConclusao)
		if err == nil {
			o.DataConclusao = &conclusao
		}
	}
	return o
}
