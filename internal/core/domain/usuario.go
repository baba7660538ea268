package domain

import "strings"

type Usuario struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome" validate:"required,max=120"`
	Email string `json:"email" validate:"required,max=254"`
	Cpf   string `json:"cpf" validate:"required,max=11"`

	// Senha carries the bcrypt hash after the service layer processes it.
	// Never serialized.
	Senha string `json:"-"`
}

func NewUsuario(nome, email, senha, cpf string) (*Usuario, error) {
	u := &Usuario{}
	if err := u.AtualizarDadosBasicos(nome, email, cpf); err != nil {
		return nil, err
	}
	if err := u.DefinirSenha(senha); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Usuario) AtualizarDadosBasicos(nome, email, cpf string) error {
	if strings.TrimSpace(nome) == "" {
		return NewValidationError("Nome é obrigatório.")
	}
	if strings.TrimSpace(email) == "" {
		return NewValidationError("Email é obrigatório.")
	}
	if strings.TrimSpace(cpf) == "" {
		return NewValidationError("CPF é obrigatório.")
	}

	u.Nome = strings.TrimSpace(nome)
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.Cpf = strings.TrimSpace(cpf)
	return nil
}

// DefinirSenha validates and stores the trimmed password. Hashing happens in
// the service layer before the entity reaches the repository.
func (u *Usuario) DefinirSenha(senha string) error {
	if strings.TrimSpace(senha) == "" || len(strings.TrimSpace(senha)) < 8 {
		return NewValidationError("Senha deve ter ao menos 8 caracteres.")
	}
	u.Senha = strings.TrimSpace(senha)
	return nil
}
