package dto

// FecharCaixaRequest closes the register. Confirmar must be true: the
// zero-out destroys stock state without writing ledger entries, so the
// caller has to opt in explicitly.
type FecharCaixaRequest struct {
	Confirmar bool `json:"confirmar"`
}

type FecharCaixaResponse struct {
	ProdutosZerados int64  `json:"produtos_zerados"`
	Aviso           string `json:"aviso"`
}
